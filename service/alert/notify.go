package alert

import (
	"fmt"

	entity "ativos.GO/model/entity"
)

// Event notifications sent on asset lifecycle changes. Best effort: the
// handlers log failures and carry on. Everything is a no-op when alerts
// are disabled.

func (c *Checker) NotifyAssetCreated(a *entity.Asset) error {
	if !c.cfg.Ready() || len(c.cfg.Recipients) == 0 {
		return nil
	}
	subject := fmt.Sprintf("New asset registered: %s - %s", a.Code, a.Name)
	body := fmt.Sprintf("Asset %s (%s) was registered.\nSerial: %s\nLocation: %s\nCustodian: %s\nState: %s\n",
		a.Code, a.Name, a.Serial, a.Location, a.Custodian, a.State)
	return c.mailer.Send(c.cfg.Recipients, subject, "<pre>"+body+"</pre>", body)
}

func (c *Checker) NotifyAssetUpdated(a *entity.Asset) error {
	if !c.cfg.Ready() || len(c.cfg.Recipients) == 0 {
		return nil
	}
	subject := fmt.Sprintf("Asset updated: %s - %s", a.Code, a.Name)
	body := fmt.Sprintf("Asset %s (%s) was updated.\nState: %s\n", a.Code, a.Name, a.State)
	return c.mailer.Send(c.cfg.Recipients, subject, "<pre>"+body+"</pre>", body)
}

// NotifyAssetDeleted is called before the asset row disappears.
func (c *Checker) NotifyAssetDeleted(a *entity.Asset) error {
	if !c.cfg.Ready() || len(c.cfg.Recipients) == 0 {
		return nil
	}
	subject := fmt.Sprintf("Asset deleted: %s - %s", a.Code, a.Name)
	body := fmt.Sprintf("Asset %s (%s, SN %s) was deleted.\n", a.Code, a.Name, a.Serial)
	return c.mailer.Send(c.cfg.Recipients, subject, "<pre>"+body+"</pre>", body)
}

func (c *Checker) NotifyMaintenanceAdded(assetName string, m *entity.MaintenanceEntry) error {
	if !c.cfg.Ready() || len(c.cfg.Recipients) == 0 {
		return nil
	}
	subject := fmt.Sprintf("Maintenance recorded: %s", assetName)
	body := fmt.Sprintf("Maintenance recorded for %s.\nType: %s\nDescription: %s\nCustodian: %s\n",
		assetName, m.Type, m.Description, m.Custodian)
	return c.mailer.Send(c.cfg.Recipients, subject, "<pre>"+body+"</pre>", body)
}
