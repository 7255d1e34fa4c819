package sequence

const (
	serializerBasePrefix = '['
	serializerSeparator  = ','
	serializerBaseSuffix = ']'
)

// render returns the textual representation of values. Values are written
// as is, without quoting or escaping.
func render(values []string) []byte {
	if len(values) == 0 {
		return []byte{serializerBasePrefix, serializerBaseSuffix}
	}
	size := 1 + len(values)
	for _, v := range values {
		size += len(v)
	}
	buf := make([]byte, 0, size)
	buf = append(buf, serializerBasePrefix)
	for _, v := range values {
		buf = append(buf, v...)
		buf = append(buf, serializerSeparator)
	}
	buf[len(buf)-1] = serializerBaseSuffix
	return buf
}
