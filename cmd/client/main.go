package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/college-organizer/internal/adapter"
	"github.com/MKhiriev/college-organizer/internal/config"
	"github.com/MKhiriev/college-organizer/internal/logger"
	"github.com/MKhiriev/college-organizer/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const tokenHelp = `Note: You need to set your auth token first!
Get it from browser: Application -> Local Storage -> supabase.auth.token
Then run with -token <token> or CLIENT_TOKEN=<token>.
`

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("college-organizer-client")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.Token == "" {
		fmt.Print(tokenHelp)
		return
	}

	creator, err := adapter.NewHTTPSubjectClient(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create subject client")
	}

	if err = run(context.Background(), creator, cfg.Token, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func testSubject() models.SubjectRequest {
	return models.SubjectRequest{
		Name:  "Test Subject",
		Color: "#34D399",
		Schedule: []models.ScheduleSlot{
			{Day: models.Monday, StartTime: "09:00", EndTime: "10:00"},
		},
	}
}

// run creates the test subject and reports the outcome. Errors are written
// to errOut and returned.
func run(ctx context.Context, creator adapter.SubjectCreator, token string, out, errOut io.Writer) error {
	body, err := creator.CreateSubject(ctx, token, testSubject())
	if err != nil {
		var statusErr *adapter.StatusError
		if errors.As(err, &statusErr) {
			fmt.Fprintf(errOut, "❌ Error: %s\n", statusErr.Body)
			fmt.Fprintf(errOut, "❌ Status: %d\n", statusErr.StatusCode)
			return err
		}
		fmt.Fprintf(errOut, "❌ Error: %v\n", err)
		return err
	}

	pretty, err := json.MarshalIndent(body, "", "  ")
	if err != nil {
		pretty = body
	}
	fmt.Fprintf(out, "✅ Success: %s\n", pretty)
	return nil
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
