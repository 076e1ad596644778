package main

import (
	"context"

	"github.com/chaos-io/transparentbg/background"
)

// feature icons for the landing page
var jobs = []background.Job{
	// rocket (start immediately)
	{Input: "public/feature_rocket_orange_raw.png", Output: "public/feature_rocket_orange.png"},
	// robot / gears (auto system)
	{Input: "public/feature_auto_orange_raw.png", Output: "public/feature_auto_orange.png"},
	// treasure / graph (high profit)
	{Input: "public/feature_profit_orange_raw.png", Output: "public/feature_profit_orange.png"},
}

func main() {
	// failures are reported per job and do not change the exit status
	background.NewProcessor().ProcessAll(context.Background(), jobs)
}
