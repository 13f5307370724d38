package menu

import (
	"fmt"
	"strings"

	"github.com/Bodzaman/cottage-pos-menu-service/internal/model"
)

type DisplayNameOptions struct {
	// UseKitchenName prefers the shortened kitchen ticket name when one is set.
	UseKitchenName bool
}

// ResolveItemDisplayName computes the single string shown for an item on the
// till or a kitchen ticket. The data holds two generations of naming: legacy
// rows keep the qualifier in a separate variant/protein column, newer rows
// embed it in the name itself. The containment checks keep a qualifier from
// being printed twice while still appending it when the fields are genuinely
// independent.
func ResolveItemDisplayName(item *model.MenuItem, opts DisplayNameOptions) string {
	if opts.UseKitchenName {
		if kitchen := item.KitchenName(); kitchen != "" {
			return kitchen
		}
	}

	base := item.BaseName()

	// The variant name is the qualifier when present; otherwise the protein
	// column plays the same role. Both must survive the containment checks so
	// a token already embedded in the name is never printed twice.
	qualifier := item.VariantLabel()
	if qualifier == "" {
		qualifier = item.Protein()
	}
	if qualifier == "" {
		return base
	}

	upperBase := strings.ToUpper(base)
	upperQualifier := strings.ToUpper(qualifier)
	switch {
	case strings.Contains(upperBase, upperQualifier):
		// Modern rows: the name already embeds the qualifier. Checked first so
		// an equal pair keeps the base's casing.
		return base
	case strings.Contains(upperQualifier, upperBase):
		// Legacy rows: the variant column holds the full string.
		return qualifier
	default:
		return fmt.Sprintf("%s (%s)", base, qualifier)
	}
}

// ReceiptDisplayName applies the stricter rule used when printing receipts:
// a variant name is taken verbatim, otherwise the protein is appended.
// This intentionally diverges from ResolveItemDisplayName; changing it would
// alter the printed text of historical orders.
func ReceiptDisplayName(baseName, variantName, proteinType string) string {
	if variantName != "" {
		return variantName
	}
	if proteinType != "" {
		return fmt.Sprintf("%s (%s)", baseName, proteinType)
	}
	return baseName
}
