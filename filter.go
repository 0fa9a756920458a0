package moqsub

// FilterType selects which objects a subscription covers.
type FilterType uint64

const (
	FilterTypeNextGroupStart FilterType = 0x01
	FilterTypeLatestObject   FilterType = 0x02
	FilterTypeAbsoluteStart  FilterType = 0x03
	FilterTypeAbsoluteRange  FilterType = 0x04
)

// GroupOrder is the requested group delivery order.
type GroupOrder uint8

const (
	GroupOrderNone       GroupOrder = 0x0
	GroupOrderAscending  GroupOrder = 0x1
	GroupOrderDescending GroupOrder = 0x2
)
