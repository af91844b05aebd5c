package cron

import (
	"log"

	"github.com/robfig/cron/v3"

	"ativos.GO/cron/jobs"
)

// Job holds schedule and run function.
type Job struct {
	Schedule string
	Run      func(...string)
}

// Jobs maps job names to their schedules. The alert scan runs every
// morning at 09:00.
var Jobs = map[string]Job{
	"alerts:check": {Schedule: "0 9 * * *", Run: jobs.AlertCheck},
}

func StartCron() *cron.Cron {
	c := cron.New()
	for name, j := range Jobs {
		run := j.Run
		if _, err := c.AddFunc(j.Schedule, func() { run() }); err != nil {
			log.Fatalf("Failed to register job %s: %v", name, err)
		}
	}
	c.Start()
	return c
}
