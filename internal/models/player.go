package models

// PlayerIdentity is one entry of the player directory (usercache.json).
type PlayerIdentity struct {
	ID          string `json:"uuid"`
	DisplayName string `json:"name"`
	SkinRef     string `json:"skin,omitempty"`
	HeadRef     string `json:"head,omitempty"`
}
