package encode

type EncodeOption func(*EncState)

// Depth shifts the whole document right by n indentation levels. Used when
// embedding encoded output under an existing structure.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// EncodeInlineScalars renders arrays whose elements are all scalars on the
// header line, key[3]: a,b,c, instead of list form. The decoder accepts both
// regardless.
func EncodeInlineScalars(v bool) EncodeOption {
	return func(es *EncState) { es.inline = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
