package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	k1 := Derive(RoleCampaign, "creator01", "project01")
	k2 := Derive(RoleCampaign, "creator01", "project01")
	assert.Equal(t, k1, k2)
	assert.Equal(t, 68, len(k1))
	assert.Equal(t, true, IsDerived(k1))

	// length prefix
	assert.NotEqual(t, Derive(RoleCampaign, "ab", "c"), Derive(RoleCampaign, "a", "bc"))

	// role separation
	assert.NotEqual(t, Derive(RoleEscrow, "x"), Derive(RoleTreasury, "x"))
	assert.NotEqual(t, Derive(RoleTreasury), Derive(RoleTreasury, ""))
}

func TestCampaignKey__Unique_Per_Creator(t *testing.T) {
	assert.Equal(t, CampaignKey("creator01", "film"), CampaignKey("creator01", "film"))
	assert.NotEqual(t, CampaignKey("creator01", "film"), CampaignKey("creator02", "film"))
	assert.NotEqual(t, CampaignKey("creator01", "film"), CampaignKey("creator01", "album"))
}

func TestAuthorities(t *testing.T) {
	campaign := CampaignKey("creator01", "film")

	assert.NotEqual(t, campaign, EscrowAuthority(campaign))
	assert.NotEqual(t, EscrowAuthority(campaign), EscrowAuthority(CampaignKey("creator01", "album")))
	assert.Equal(t, TreasuryAuthority(), TreasuryAuthority())
	assert.NotEqual(t, CustodyKey(campaign, "native"), CustodyKey(campaign, "token:01"))
}

func TestIsDerived(t *testing.T) {
	assert.Equal(t, true, IsDerived(CampaignKey("creator01", "film")))
	assert.Equal(t, true, IsDerived(EscrowAuthority(CampaignKey("creator01", "film"))))
	assert.Equal(t, true, IsDerived(TreasuryAuthority()))
	assert.Equal(t, true, IsDerived("pda:anything"))

	assert.Equal(t, false, IsDerived("creator01"))
	assert.Equal(t, false, IsDerived(""))
	assert.Equal(t, false, IsDerived("pda"))
	assert.Equal(t, false, IsDerived("PDA:abc"))
}
