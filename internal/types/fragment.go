package types

// Fragment contains a rendered SQL fragment and the named parameters it
// requires. The SQL is suitable for inclusion in a larger query; parameter
// values are supplied out-of-band under the listed names.
type Fragment struct {
	SQL            string
	RequiredParams []string
}
