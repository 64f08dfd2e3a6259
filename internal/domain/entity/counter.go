package entity

// CounterReceiptNo is the name of the receipt number sequence.
const CounterReceiptNo = "receipt_no"

// Counter is a named monotonic sequence. The receipt number counter is
// bumped with UPDATE ... RETURNING inside the checkout transaction so a
// rolled-back checkout never consumes a number.
type Counter struct {
	Name  string `gorm:"size:100;primary_key" json:"name"`
	Value int64  `gorm:"default:0" json:"value"`
}

// TableName returns the table name for the Counter model
func (Counter) TableName() string {
	return "counters"
}
