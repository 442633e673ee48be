package models

import "time"

// MvpAccount is a provisioned account on the secondary (StoryBrand) product.
type MvpAccount struct {
	ID                  string          `json:"_id,omitempty"`
	Client              string          `json:"client"`
	MvpType             string          `json:"mvpType"`
	Active              bool            `json:"active"`
	AccountInfo         *MvpAccountInfo `json:"accountInfo,omitempty"`
	ExternalUserID      string          `json:"externalUserId,omitempty"`
	CreatedByAdmin      bool            `json:"createdByAdmin,omitempty"`
	AdminCreationReason string          `json:"adminCreationReason,omitempty"`
	CreatedAt           time.Time       `json:"createdAt,omitzero"`
	UpdatedAt           time.Time       `json:"updatedAt,omitzero"`
}

type MvpAccountInfo struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type CreateMvpAccountRequest struct {
	Email               string `json:"email"`
	Password            string `json:"password"`
	FirstName           string `json:"firstName"`
	LastName            string `json:"lastName"`
	ClientID            string `json:"clientId"`
	Role                string `json:"role,omitempty"`
	AdminCreationReason string `json:"adminCreationReason,omitempty"`
	AdminToken          string `json:"adminToken,omitempty"`
}

type CreateMvpAccountResponse struct {
	Message string     `json:"message"`
	Account MvpAccount `json:"account"`
}

type MvpAccountsResponse struct {
	Accounts []MvpAccount `json:"accounts"`
}

type ChangeMvpPasswordRequest struct {
	ClientID    string `json:"clientId"`
	NewPassword string `json:"newPassword"`
}

// MessageResponse is the generic { message } acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}
