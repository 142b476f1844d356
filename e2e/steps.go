package e2e

import (
	"github.com/cucumber/godog"

	"casework/e2e/steps/common"
	"casework/e2e/steps/custody"
	"casework/e2e/steps/featureswitch"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	common.RegisterSteps(ctx, tc)
	featureswitch.RegisterSteps(ctx, tc)
	custody.RegisterSteps(ctx, tc)
}
