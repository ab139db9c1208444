package main

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/rs/zerolog"

	"github.com/aleister1102/htmlredline/internal/common/filemanager"
	"github.com/aleister1102/htmlredline/internal/config"
	"github.com/aleister1102/htmlredline/internal/differ"
	"github.com/aleister1102/htmlredline/internal/logger"
	"github.com/aleister1102/htmlredline/internal/models"
	"github.com/aleister1102/htmlredline/internal/parser"
	"github.com/aleister1102/htmlredline/internal/resolver"
)

func main() {
	flags := parseFlags()

	if flags.originalFile == "" || flags.modifiedFile == "" {
		log.Fatalln("[FATAL] both -original and -modified are required")
	}

	gCfg, err := config.LoadGlobalConfig(flags.configFile, zerolog.Nop())
	if err != nil {
		log.Fatalf("[FATAL] could not load global config using path '%s': %v", flags.configFile, err)
	}
	if flags.outputFormat != "" {
		gCfg.OutputConfig.Format = flags.outputFormat
	}
	if err := config.ValidateConfig(gCfg); err != nil {
		log.Fatalf("[FATAL] configuration validation failed: %v", err)
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] could not initialize logger: %v", err)
	}

	if err := run(flags, gCfg, zLogger); err != nil {
		zLogger.Fatal().Err(err).Msg("htmlredline failed")
	}
}

func run(flags cliFlags, gCfg *config.GlobalConfig, zLogger zerolog.Logger) error {
	fileManager := filemanager.NewFileManager(zLogger)

	originalHTML, err := fileManager.ReadFileContent(flags.originalFile)
	if err != nil {
		return err
	}
	modifiedHTML, err := fileManager.ReadFileContent(flags.modifiedFile)
	if err != nil {
		return err
	}

	htmlParser := parser.NewHTMLParser(zLogger)
	originalTree, err := htmlParser.Parse(string(originalHTML))
	if err != nil {
		return err
	}
	modifiedTree, err := htmlParser.Parse(string(modifiedHTML))
	if err != nil {
		return err
	}
	if originalTree == nil && modifiedTree == nil {
		zLogger.Info().Msg("Nothing to diff: both inputs are empty")
		return nil
	}
	if originalTree == nil {
		originalTree = &models.Root{}
	}
	if modifiedTree == nil {
		modifiedTree = &models.Root{}
	}

	treeDiffer, err := differ.NewTreeDifferBuilder().
		WithInlineDiffConfig(differ.InlineDiffConfig{
			Granularity:           differ.Granularity(gCfg.DiffConfig.Granularity),
			EnableSemanticCleanup: gCfg.DiffConfig.EnableSemanticCleanup,
		}).
		WithLogger(zLogger).
		Build()
	if err != nil {
		return err
	}

	annotated, err := treeDiffer.Diff(originalTree, modifiedTree)
	if err != nil {
		return err
	}

	if gCfg.OutputConfig.Format == "json" {
		data, err := json.MarshalIndent(annotated, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	decisions, err := loadDecisions(flags.decisionsFile, fileManager)
	if err != nil {
		return err
	}

	resolved, err := resolver.NewResolver(zLogger).Resolve(annotated, decisions)
	if err != nil {
		return err
	}
	fmt.Println(resolved)
	return nil
}

// loadDecisions reads the reviewer's decision map. No file means every node
// stays undecided, i.e. the original reading wins.
func loadDecisions(path string, fileManager *filemanager.FileManager) (models.DecisionMap, error) {
	if path == "" {
		return nil, nil
	}
	data, err := fileManager.ReadFileContent(path)
	if err != nil {
		return nil, err
	}
	var decisions models.DecisionMap
	if err := json.Unmarshal(data, &decisions); err != nil {
		return nil, err
	}
	return decisions, nil
}
