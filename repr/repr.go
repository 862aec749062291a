// Package repr renders opaque values, which have no source form, as
// ‹type:value›.
package repr

const (
	QuotePrefix = "‹"
	QuoteSuffix = "›"
)

func Quote(s string) string {
	return QuotePrefix + s + QuoteSuffix
}

// QuoteTyped quotes an opaque value of type typ.
func QuoteTyped(typ, s string) string {
	return Quote(typ + ":" + s)
}
