package collector

import "time"

// DefaultURL is the DevNet page listing every APIC fault.
const DefaultURL = "https://pubhub.devnetcloud.com/media/apic-mim-ref-411/docs/FaultMessages.html"

type Options struct {
	URL     string
	Timeout time.Duration
	Output  string
}

func DefaultOptions() Options {
	return Options{
		URL:     DefaultURL,
		Timeout: 30 * time.Second,
		Output:  "faults.json",
	}
}
