// Package keys derives the record keys and authorities of the escrow.
// Every derived key is bound to exactly one role, so two roles never share a key.
package keys

import (
	"encoding/binary"
	"encoding/hex"
	"strings"

	"lukechampine.com/blake3"
)

// Prefix marks derived keys, no external identity may carry it
const Prefix = "pda:"

// Roles used as the first derivation input
const (
	RoleCampaign = "campaign"
	RoleEscrow   = "escrow"
	RoleTreasury = "treasury"
	RoleCustody  = "custody"
)

// Derive returns a deterministic key for a role scoped by identifiers.
// Each input is length-prefixed so ("ab", "c") and ("a", "bc") never collide.
func Derive(role string, scope ...string) string {
	h := blake3.New(32, nil)

	var lenBuf [binary.MaxVarintLen64]byte
	write := func(s string) {
		n := binary.PutUvarint(lenBuf[:], uint64(len(s)))
		_, _ = h.Write(lenBuf[:n])
		_, _ = h.Write([]byte(s))
	}

	write(role)
	for _, s := range scope {
		write(s)
	}
	return Prefix + hex.EncodeToString(h.Sum(nil))
}

// IsDerived reports whether id lies in the namespace of derived keys
func IsDerived(id string) bool {
	return strings.HasPrefix(id, Prefix)
}

// CampaignKey ...
func CampaignKey(creator string, projectName string) string {
	return Derive(RoleCampaign, creator, projectName)
}

// EscrowAuthority is the campaign scoped authority that releases the reward token
func EscrowAuthority(campaignKey string) string {
	return Derive(RoleEscrow, campaignKey)
}

// TreasuryAuthority is the deployment wide authority owning platform fees
func TreasuryAuthority() string {
	return Derive(RoleTreasury)
}

// CustodyKey ...
func CustodyKey(owner string, asset string) string {
	return Derive(RoleCustody, owner, asset)
}
