package models

const (
	StatusPending      = "Pending"
	StatusInProgress   = "In Progress"
	StatusNeedMoreInfo = "Need More Info"
	StatusPriced       = "Priced"
	StatusDispatched   = "Dispatched"
	StatusPickedUp     = "Picked Up"
	StatusDelivered    = "Delivered"
	StatusCompleted    = "Completed"
	StatusCancelled    = "Cancelled"
	StatusRejected     = "Rejected"
	StatusArchived     = "Archived"
)

// StatusColumn names one of the two independently tracked labels on a quote.
type StatusColumn string

const (
	ColumnStatus        StatusColumn = "status"
	ColumnBrokersStatus StatusColumn = "brokers_status"
)

// QuoteStatuses is the option list for the shipper-facing status column.
var QuoteStatuses = []string{
	StatusPending,
	StatusInProgress,
	StatusNeedMoreInfo,
	StatusPriced,
	StatusDispatched,
	StatusPickedUp,
	StatusDelivered,
	StatusCompleted,
	StatusCancelled,
	StatusRejected,
	StatusArchived,
}

// BrokersStatuses is the option list for the broker-side working label.
var BrokersStatuses = []string{
	StatusPending,
	StatusInProgress,
	StatusNeedMoreInfo,
	StatusPriced,
	StatusDispatched,
	StatusPickedUp,
	StatusDelivered,
	StatusCompleted,
	StatusCancelled,
}

var orderStatuses = map[string]bool{
	StatusDispatched: true,
	StatusPickedUp:   true,
	StatusDelivered:  true,
	StatusCompleted:  true,
}

var terminalStatuses = map[string]bool{
	StatusDelivered: true,
	StatusArchived:  true,
	StatusRejected:  true,
	StatusCancelled: true,
}

func (c StatusColumn) Options() []string {
	switch c {
	case ColumnStatus:
		return QuoteStatuses
	case ColumnBrokersStatus:
		return BrokersStatuses
	default:
		return nil
	}
}

func (c StatusColumn) IsValid() bool {
	return c == ColumnStatus || c == ColumnBrokersStatus
}

// Accepts reports whether value is one of the column's options. Any option
// may follow any other.
func (c StatusColumn) Accepts(value string) bool {
	for _, opt := range c.Options() {
		if opt == value {
			return true
		}
	}
	return false
}

func IsOrderStatus(status string) bool {
	return orderStatuses[status]
}

func IsTerminalStatus(status string) bool {
	return terminalStatuses[status]
}

// OrderStatuses returns the statuses that mark a quote row as an order.
func OrderStatuses() []string {
	return []string{StatusDispatched, StatusPickedUp, StatusDelivered, StatusCompleted}
}

// TerminalStatuses returns the statuses that end a quote's lifecycle, in
// option-list order.
func TerminalStatuses() []string {
	var out []string
	for _, s := range QuoteStatuses {
		if terminalStatuses[s] {
			out = append(out, s)
		}
	}
	return out
}
