package domain

const (
	ErrIllegalCharacters StatusError = "illegal characters"
	ErrCouponCoins       StatusError = "coins is less than 0"
	ErrCouponRAM         StatusError = "ram is less than 0"
	ErrCouponDisk        StatusError = "disk is less than 0"
	ErrCouponCPU         StatusError = "cpu is less than 0"
	ErrCouponServers     StatusError = "servers is less than 0"
	ErrEmptyCoupon       StatusError = "cannot create empty coupon"
	ErrMissingCode       StatusError = "missing code"
	ErrInvalidCode       StatusError = "invalid code"
)

type (
	Coupon struct {
		Coins   float64 `json:"coins"`
		RAM     float64 `json:"ram"`
		Disk    float64 `json:"disk"`
		CPU     float64 `json:"cpu"`
		Servers float64 `json:"servers"`
	}

	CreateCouponRequest struct {
		Code    *string
		Coins   *float64
		RAM     *float64
		Disk    *float64
		CPU     *float64
		Servers *float64
	}

	CreateCouponResponse struct {
		Status string `json:"status"`
		Code   string `json:"code"`
	}

	RevokeCouponRequest struct {
		Code *string
	}
)

func (c Coupon) IsEmpty() bool {
	return c.Coins == 0 && c.RAM == 0 && c.Disk == 0 && c.CPU == 0 && c.Servers == 0
}
