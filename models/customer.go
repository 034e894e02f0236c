package models

type Customer struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	Name          string `json:"name" gorm:"size:200;not null"`
	ContactNumber string `json:"contact_number" gorm:"size:20;index"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	City          string `json:"city" gorm:"size:100"`
	State         string `json:"state" gorm:"size:100"`
	PinCode       string `json:"pin_code" gorm:"size:10"`

	BothAddressIsSame bool   `json:"both_address_is_same"`
	SiteAddress       string `json:"site_address"`
	SiteCity          string `json:"site_city" gorm:"size:100"`
	SiteState         string `json:"site_state" gorm:"size:100"`
	SitePinCode       string `json:"site_pin_code" gorm:"size:10"`
}

// SyncSiteAddress copies the billing address into empty site fields when
// the both_address_is_same flag is set. Invoked explicitly by the write
// path instead of a save hook so the data flow stays traceable.
func (c *Customer) SyncSiteAddress() {
	if !c.BothAddressIsSame {
		return
	}
	if c.SiteAddress == "" {
		c.SiteAddress = c.Address
	}
	if c.SiteCity == "" {
		c.SiteCity = c.City
	}
	if c.SiteState == "" {
		c.SiteState = c.State
	}
	if c.SitePinCode == "" {
		c.SitePinCode = c.PinCode
	}
}
