package custody

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	Do(method, path string, body any, headers map[string]string) error
	BearerHeaders() map[string]string
}

// RegisterSteps registers custody endpoint steps
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &custodySteps{tc: tc}

	ctx.Step(`^I move "([^"]*)" booking "([^"]*)" to prison "([^"]*)"$`, steps.movePrison)
	ctx.Step(`^I move "([^"]*)" booking "([^"]*)" to prison "([^"]*)" without credentials$`, steps.movePrisonAnonymously)
	ctx.Step(`^I set booking number "([^"]*)" on "([^"]*)" for sentence starting "([^"]*)"$`, steps.setBookingNumber)
	ctx.Step(`^I set key date "([^"]*)" to "([^"]*)" on offender "([^"]*)"$`, steps.setKeyDate)
}

type custodySteps struct {
	tc TestContext
}

func locationPath(noms, booking string) string {
	return fmt.Sprintf("/secure/offenders/nomsNumber/%s/custody/bookingNumber/%s", noms, booking)
}

func (s *custodySteps) movePrison(ctx context.Context, noms, booking, prison string) error {
	return s.tc.Do(http.MethodPut, locationPath(noms, booking),
		map[string]string{"nomsPrisonInstitutionCode": prison}, s.tc.BearerHeaders())
}

func (s *custodySteps) movePrisonAnonymously(ctx context.Context, noms, booking, prison string) error {
	return s.tc.Do(http.MethodPut, locationPath(noms, booking),
		map[string]string{"nomsPrisonInstitutionCode": prison}, nil)
}

func (s *custodySteps) setBookingNumber(ctx context.Context, booking, noms, start string) error {
	return s.tc.Do(http.MethodPut, fmt.Sprintf("/secure/offenders/nomsNumber/%s/custody/bookingNumber", noms),
		map[string]string{"bookingNumber": booking, "sentenceStartDate": start}, s.tc.BearerHeaders())
}

func (s *custodySteps) setKeyDate(ctx context.Context, code, date, crn string) error {
	return s.tc.Do(http.MethodPut, fmt.Sprintf("/secure/offenders/crn/%s/custody/keyDates/%s", crn, code),
		map[string]string{"date": date}, s.tc.BearerHeaders())
}
