package domain

const (
	ErrCoinsNotNumber  StatusError = "coins must be number"
	ErrCoinsOutOfRange StatusError = "too small or big coins"
)

type (
	// SetCoinsRequest carries the body fields that had the expected JSON type; nil means absent or mistyped.
	SetCoinsRequest struct {
		ID    *string
		Coins *float64
	}
)
