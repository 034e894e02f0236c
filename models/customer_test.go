package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncSiteAddressCopiesBillingIntoEmptyFields(t *testing.T) {
	c := Customer{
		Name:              "Acme Cooling",
		Address:           "12 MG Road",
		City:              "Pune",
		State:             "Maharashtra",
		PinCode:           "411001",
		BothAddressIsSame: true,
	}
	c.SyncSiteAddress()

	assert.Equal(t, "12 MG Road", c.SiteAddress)
	assert.Equal(t, "Pune", c.SiteCity)
	assert.Equal(t, "Maharashtra", c.SiteState)
	assert.Equal(t, "411001", c.SitePinCode)
}

func TestSyncSiteAddressKeepsExplicitSiteFields(t *testing.T) {
	c := Customer{
		Address:           "12 MG Road",
		City:              "Pune",
		SiteAddress:       "Plot 7, Industrial Estate",
		BothAddressIsSame: true,
	}
	c.SyncSiteAddress()

	assert.Equal(t, "Plot 7, Industrial Estate", c.SiteAddress, "filled site fields are not overwritten")
	assert.Equal(t, "Pune", c.SiteCity, "empty site fields still get the billing value")
}

func TestSyncSiteAddressNoopWhenFlagUnset(t *testing.T) {
	c := Customer{Address: "12 MG Road", City: "Pune"}
	c.SyncSiteAddress()

	assert.Empty(t, c.SiteAddress)
	assert.Empty(t, c.SiteCity)
}
