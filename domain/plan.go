package domain

const (
	ErrInvalidPackage   StatusError = "invalid package"
	ErrMissingVariables StatusError = "missing variables"
	ErrRAMSize          StatusError = "ram size"
	ErrDiskSize         StatusError = "disk size"
	ErrCPUSize          StatusError = "cpu size"
	ErrServerSize       StatusError = "server size"
)

type (
	SetPlanRequest struct {
		ID      *string
		Package *string
	}

	SetResourcesRequest struct {
		ID      *string
		RAM     *float64
		Disk    *float64
		CPU     *float64
		Servers *float64
	}
)

func (r SetResourcesRequest) HasAny() bool {
	return r.RAM != nil || r.Disk != nil || r.CPU != nil || r.Servers != nil
}
