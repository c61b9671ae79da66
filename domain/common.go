package domain

// StatusError is a validation failure reported to the client as {"status": "<message>"}.
type StatusError string

func (e StatusError) Error() string {
	return string(e)
}

const StatusSuccess = "success"

const (
	ErrBodyNotObject StatusError = "body must be an object"
	ErrBodyIsArray   StatusError = "body cannot be an array"
	ErrMissingBody   StatusError = "missing body"
	ErrMissingID     StatusError = "missing id"
	ErrIDNotString   StatusError = "id must be a string"
	ErrInvalidID     StatusError = "invalid id"
)

type (
	// Resources is a quota record: an extra override, or a coupon's resource part.
	Resources struct {
		RAM     float64 `json:"ram"`
		Disk    float64 `json:"disk"`
		CPU     float64 `json:"cpu"`
		Servers float64 `json:"servers"`
	}
)

func (r Resources) IsZero() bool {
	return r.RAM == 0 && r.Disk == 0 && r.CPU == 0 && r.Servers == 0
}

func (r Resources) Add(o Resources) Resources {
	return Resources{
		RAM:     r.RAM + o.RAM,
		Disk:    r.Disk + o.Disk,
		CPU:     r.CPU + o.CPU,
		Servers: r.Servers + o.Servers,
	}
}
