package enum

import (
	"encoding/json"
	"fmt"
)

// RevenuePeriod labels one reporting window of a revenue series
type RevenuePeriod int

const (
	RevenuePeriodDaily RevenuePeriod = iota
	RevenuePeriodWeekly
	RevenuePeriodMonthly
	RevenuePeriodAnnual
)

var revenuePeriodNames = [...]string{"daily", "weekly", "monthly", "annual"}

// RevenuePeriods returns every period in reporting order
func RevenuePeriods() []RevenuePeriod {
	return []RevenuePeriod{
		RevenuePeriodDaily,
		RevenuePeriodWeekly,
		RevenuePeriodMonthly,
		RevenuePeriodAnnual,
	}
}

func (p RevenuePeriod) String() string {
	if p < 0 || int(p) >= len(revenuePeriodNames) {
		return fmt.Sprintf("RevenuePeriod(%d)", int(p))
	}
	return revenuePeriodNames[p]
}

func (p RevenuePeriod) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *RevenuePeriod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	for i, name := range revenuePeriodNames {
		if name == str {
			*p = RevenuePeriod(i)
			return nil
		}
	}
	return fmt.Errorf("unknown revenue period %q", str)
}
