package menu

import (
	"testing"

	"github.com/Bodzaman/cottage-pos-menu-service/internal/model"
	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func TestResolveItemDisplayName_BaseNameOnly(t *testing.T) {
	item := &model.MenuItem{Name: "TIKKA MASALA"}
	got := ResolveItemDisplayName(item, DisplayNameOptions{})
	assert.Equal(t, "TIKKA MASALA", got)

	// Re-applying to its own output changes nothing.
	again := ResolveItemDisplayName(&model.MenuItem{Name: got}, DisplayNameOptions{})
	assert.Equal(t, got, again)
}

func TestResolveItemDisplayName_ItemNameOverridesName(t *testing.T) {
	item := &model.MenuItem{Name: "CHICKEN CURRY", ItemName: strptr("CHICKEN CURRY (MEDIUM)")}
	assert.Equal(t, "CHICKEN CURRY (MEDIUM)", ResolveItemDisplayName(item, DisplayNameOptions{}))
}

func TestResolveItemDisplayName_ProteinAppendedWithoutVariant(t *testing.T) {
	item := &model.MenuItem{Name: "TIKKA MASALA", ProteinType: strptr("Chicken")}
	assert.Equal(t, "TIKKA MASALA (Chicken)", ResolveItemDisplayName(item, DisplayNameOptions{}))
}

func TestResolveItemDisplayName_ProteinAlreadyEmbedded(t *testing.T) {
	// Base already contains the protein token, so nothing is appended.
	item := &model.MenuItem{Name: "LAMB TIKKA MASALA", ProteinType: strptr("LAMB")}
	assert.Equal(t, "LAMB TIKKA MASALA", ResolveItemDisplayName(item, DisplayNameOptions{}))
}

func TestResolveItemDisplayName_VariantAlreadyEmbedded(t *testing.T) {
	item := &model.MenuItem{Name: "LAMB TIKKA MASALA", VariantName: strptr("LAMB")}
	assert.Equal(t, "LAMB TIKKA MASALA", ResolveItemDisplayName(item, DisplayNameOptions{}))
}

func TestResolveItemDisplayName_VariantContainsBase(t *testing.T) {
	item := &model.MenuItem{Name: "TIKKA MASALA", VariantName: strptr("LAMB TIKKA MASALA")}
	assert.Equal(t, "LAMB TIKKA MASALA", ResolveItemDisplayName(item, DisplayNameOptions{}))
}

func TestResolveItemDisplayName_IndependentVariantAppended(t *testing.T) {
	item := &model.MenuItem{Name: "TIKKA MASALA", VariantName: strptr("Lamb")}
	assert.Equal(t, "TIKKA MASALA (Lamb)", ResolveItemDisplayName(item, DisplayNameOptions{}))
}

func TestResolveItemDisplayName_ContainmentIsCaseInsensitive(t *testing.T) {
	item := &model.MenuItem{Name: "Tikka Masala", VariantName: strptr("LAMB TIKKA MASALA")}
	assert.Equal(t, "LAMB TIKKA MASALA", ResolveItemDisplayName(item, DisplayNameOptions{}))
}

func TestResolveItemDisplayName_EqualNamesReturnBase(t *testing.T) {
	// An equal pair, regardless of casing, keeps the base name untouched.
	item := &model.MenuItem{Name: "SAAG PANEER", VariantName: strptr("saag paneer")}
	assert.Equal(t, "SAAG PANEER", ResolveItemDisplayName(item, DisplayNameOptions{}))

	item = &model.MenuItem{Name: "Paneer", ProteinType: strptr("PANEER")}
	assert.Equal(t, "Paneer", ResolveItemDisplayName(item, DisplayNameOptions{}))
}

func TestResolveItemDisplayName_KitchenNameWins(t *testing.T) {
	item := &model.MenuItem{
		Name:               "X",
		VariantName:        strptr("Y"),
		KitchenDisplayName: strptr("K"),
	}
	assert.Equal(t, "K", ResolveItemDisplayName(item, DisplayNameOptions{UseKitchenName: true}))

	// Without the option, the kitchen name is ignored.
	assert.Equal(t, "X (Y)", ResolveItemDisplayName(item, DisplayNameOptions{}))
}

func TestResolveItemDisplayName_KitchenRequestedButMissing(t *testing.T) {
	item := &model.MenuItem{Name: "ONION BHAJI"}
	assert.Equal(t, "ONION BHAJI", ResolveItemDisplayName(item, DisplayNameOptions{UseKitchenName: true}))
}

func TestResolveItemDisplayName_JoinedVariantRecordFallback(t *testing.T) {
	item := &model.MenuItem{
		Name:    "KORMA",
		Variant: &model.ItemVariant{Name: "King Prawn"},
	}
	assert.Equal(t, "KORMA (King Prawn)", ResolveItemDisplayName(item, DisplayNameOptions{}))
}

func TestReceiptDisplayName(t *testing.T) {
	// Variant taken verbatim, no containment logic.
	assert.Equal(t, "Lamb", ReceiptDisplayName("TIKKA MASALA", "Lamb", ""))
	assert.Equal(t, "TIKKA MASALA (Chicken)", ReceiptDisplayName("TIKKA MASALA", "", "Chicken"))
	assert.Equal(t, "TIKKA MASALA", ReceiptDisplayName("TIKKA MASALA", "", ""))
}
