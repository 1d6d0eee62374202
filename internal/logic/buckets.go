package logic

// Range is an inclusive integer interval
type Range struct {
	Min int
	Max int
}

// Contains reports whether v lies within the range, bounds included
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Bucket maps a selector label to a fixed numeric range
type Bucket struct {
	Label   string
	Display string
	Range   Range
}

// PagesBuckets are the page-count selectors in display order
var PagesBuckets = []Bucket{
	{Label: "1-100", Display: "1 - 100", Range: Range{Min: 1, Max: 100}},
	{Label: "101-200", Display: "101 - 200", Range: Range{Min: 101, Max: 200}},
	{Label: "201-300", Display: "201 - 300", Range: Range{Min: 201, Max: 300}},
}

// CenturyBuckets are the publication-century selectors in display order
var CenturyBuckets = []Bucket{
	{Label: "16th", Display: "16th Century", Range: Range{Min: 1501, Max: 1600}},
	{Label: "17th", Display: "17th Century", Range: Range{Min: 1601, Max: 1700}},
	{Label: "18th", Display: "18th Century", Range: Range{Min: 1701, Max: 1800}},
	{Label: "19th", Display: "19th Century", Range: Range{Min: 1801, Max: 1900}},
}

// PagesRange resolves a page-count selector. ok is false for an empty or
// unknown label, which means the selector places no constraint.
func PagesRange(label string) (Range, bool) {
	return lookupBucket(PagesBuckets, label)
}

// CenturyRange resolves a century selector. ok is false for an empty or
// unknown label.
func CenturyRange(label string) (Range, bool) {
	return lookupBucket(CenturyBuckets, label)
}

// BucketDisplay returns the display text for a label, or the label itself
// when it is not part of the table.
func BucketDisplay(buckets []Bucket, label string) string {
	for _, b := range buckets {
		if b.Label == label {
			return b.Display
		}
	}
	return label
}

func lookupBucket(buckets []Bucket, label string) (Range, bool) {
	for _, b := range buckets {
		if b.Label == label {
			return b.Range, true
		}
	}
	return Range{}, false
}
