package render

// Capabilities describes the concatenation and aggregation features
// supported by a dialect.
type Capabilities struct {
	ConcatFunction        bool // null-propagating CONCAT(...) call form (vs operator form)
	DistinctAggregate     bool // DISTINCT inside the string aggregate
	DistinctWithDelimiter bool // DISTINCT combined with a custom delimiter
	TextCast              bool // aggregate input is cast to a text type
}
