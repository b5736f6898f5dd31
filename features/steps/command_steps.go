//go:build integration

package steps

import (
	"context"
	"fmt"
	"strings"

	"vid2aud/domain/audio"
	"vid2aud/infrastructure/ffmpeg"

	"github.com/cucumber/godog"
)

type commandContext struct {
	job  *audio.ConversionJob
	args []string
}

var sharedCommandContext *commandContext

func InitializeCommandScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		sharedCommandContext = &commandContext{}
		return c, nil
	})

	ctx.Step(`^I build the ffmpeg command for encoder "([^"]*)"$`, iBuildTheFFmpegCommandForEncoder)
	ctx.Step(`^the command should (include|not include) the compatibility flag$`, theCommandShouldIncludeTheCompatibilityFlag)
	ctx.Step(`^the command should start with "([^"]*)" and end with the output path$`, theCommandShouldStartWithAndEndWithTheOutputPath)
}

func iBuildTheFFmpegCommandForEncoder(encoder string) error {
	c := sharedCommandContext
	c.job = &audio.ConversionJob{
		SourcePath:      "videoInput/clip.mov",
		DestinationPath: "audioOutput/clip.out",
		EncoderID:       encoder,
		OutputExtension: "out",
	}
	c.args = ffmpeg.BuildArgs(c.job)
	return nil
}

func theCommandShouldIncludeTheCompatibilityFlag(presence string) error {
	joined := strings.Join(sharedCommandContext.args, " ")
	has := strings.Contains(joined, "-strict -2")
	if presence == "include" && !has {
		return fmt.Errorf("expected -strict -2 in %q", joined)
	}
	if presence == "not include" && has {
		return fmt.Errorf("did not expect -strict -2 in %q", joined)
	}
	return nil
}

func theCommandShouldStartWithAndEndWithTheOutputPath(first string) error {
	c := sharedCommandContext
	if c.args[0] != first {
		return fmt.Errorf("expected first argument %q, got %q", first, c.args[0])
	}
	if last := c.args[len(c.args)-1]; last != c.job.DestinationPath {
		return fmt.Errorf("expected last argument %q, got %q", c.job.DestinationPath, last)
	}
	return nil
}
