package importer

import "github.com/alexanderramin/plazo/internal/scheduler"

// ToOverrideMap keys the document's windows by delivery ID. When an ID
// repeats, the last entry wins.
func ToOverrideMap(doc *OverrideDocument) map[string]scheduler.Override {
	out := make(map[string]scheduler.Override, len(doc.Overrides))
	for _, ov := range doc.Overrides {
		out[ov.DeliveryID] = scheduler.Override{StartDate: ov.StartDate, EndDate: ov.EndDate}
	}
	return out
}
