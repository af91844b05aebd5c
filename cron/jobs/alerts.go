package jobs

import (
	"log"

	"ativos.GO/config"
	"ativos.GO/service/alert"
)

// AlertCheck runs the daily warranty and maintenance scans and emails
// the configured recipients.
func AlertCheck(args ...string) {
	db, err := config.NewDB()
	if err != nil {
		log.Printf("alert check: database connection failed: %v", err)
		return
	}
	alert.NewChecker(db, config.LoadMailConfig(), nil).RunDailyCheck()
}
