package featureswitch

import (
	"context"
	"net/http"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	Do(method, path string, body any, headers map[string]string) error
	AdminHeaders() map[string]string
}

// RegisterSteps registers feature switch admin steps
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &switchSteps{tc: tc}

	ctx.Step(`^I set feature switch "([^"]*)" to (true|false)$`, steps.setSwitch)
	ctx.Step(`^I reset feature switch "([^"]*)"$`, steps.resetSwitch)
	ctx.Step(`^I read feature switch "([^"]*)"$`, steps.readSwitch)
	ctx.Step(`^I list feature switches without the admin token$`, steps.listWithoutToken)
}

type switchSteps struct {
	tc TestContext
}

func (s *switchSteps) setSwitch(ctx context.Context, name, enabled string) error {
	return s.tc.Do(http.MethodPut, "/admin/feature-switches/"+name,
		map[string]bool{"enabled": enabled == "true"}, s.tc.AdminHeaders())
}

func (s *switchSteps) resetSwitch(ctx context.Context, name string) error {
	return s.tc.Do(http.MethodDelete, "/admin/feature-switches/"+name, nil, s.tc.AdminHeaders())
}

func (s *switchSteps) readSwitch(ctx context.Context, name string) error {
	return s.tc.Do(http.MethodGet, "/admin/feature-switches/"+name, nil, s.tc.AdminHeaders())
}

func (s *switchSteps) listWithoutToken(ctx context.Context) error {
	return s.tc.Do(http.MethodGet, "/admin/feature-switches/", nil, nil)
}
