package domain

import "encoding/json"

const ErrUserNotOnPanel StatusError = "could not find user on panel"

type (
	PackageInfo struct {
		Name string `json:"name,omitempty"`
		Resources
	}

	UserInfoResponse struct {
		Status   string          `json:"status"`
		Coins    *float64        `json:"coins"`
		Package  PackageInfo     `json:"package"`
		Extra    Resources       `json:"extra"`
		UserInfo json.RawMessage `json:"userinfo"`
	}
)
