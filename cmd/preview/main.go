// Command preview prints the alignment analysis for one birth date without
// Redis, PostgreSQL or the chat gateway.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/kapu/alignment-bot-go/internal/adapter"
	"github.com/kapu/alignment-bot-go/internal/alignment"
	"github.com/kapu/alignment-bot-go/internal/service/briefing"
	"github.com/kapu/alignment-bot-go/internal/service/user"
	"github.com/kapu/alignment-bot-go/internal/util"
)

func main() {
	birth := flag.String("birth", "", "birth date (yyyy-mm-dd)")
	place := flag.String("place", "", "birth place (optional)")
	date := flag.String("date", "", "target date (yyyy-mm-dd, default today)")
	tz := flag.String("tz", "Asia/Seoul", "timezone used for the default date")
	name := flag.String("name", "", "name for the challenges profile")
	challenges := flag.Bool("challenges", false, "print the challenges profile instead")
	text := flag.Bool("text", false, "print the chat message instead of JSON")
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	if *birth == "" {
		flag.Usage()
		os.Exit(2)
	}

	formatter := adapter.NewResponseFormatter("!")

	if *challenges {
		profile, err := alignment.BuildChallengesProfile(*birth, *name)
		if err != nil {
			logger.Fatal("invalid birth date", zap.Error(err))
		}
		if *text {
			fmt.Println(formatter.FormatChallenges(profile))
			return
		}
		writeJSON(logger, profile)
		return
	}

	target := util.CalendarDate(time.Now(), util.LoadLocation(*tz, logger))
	if *date != "" {
		parsed, err := time.Parse(util.DateLayout, *date)
		if err != nil {
			logger.Fatal("invalid target date", zap.String("date", *date), zap.Error(err))
		}
		target = parsed
	}

	result, err := alignment.ForDate(*birth, *place, target)
	if err != nil {
		logger.Fatal("analysis failed", zap.Error(err))
	}

	if *text {
		fmt.Println(formatter.FormatBriefing(&briefing.Briefing{
			User:   user.User{DisplayName: *name, BirthDate: *birth, BirthPlace: *place},
			Date:   target,
			Result: result,
		}))
		return
	}
	writeJSON(logger, result)
}

func writeJSON(logger *zap.Logger, v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		logger.Fatal("failed to write output", zap.Error(err))
	}
}
