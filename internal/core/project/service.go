package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/exgen-dev/exgen/internal/core/scaffold"
	"github.com/exgen-dev/exgen/internal/defs"
	"github.com/exgen-dev/exgen/internal/template"
	"github.com/exgen-dev/exgen/pkg/models"
)

// Operation names reported in Report.Operation.
const (
	OpInitializeStructure = "initialize-structure"
	OpGenerateServer      = "generate-server"
	OpGenerateRouteStub   = "generate-route-stub"
	OpGenerateModelStub   = "generate-model-stub"
	OpInstallDependencies = "install-dependencies"
)

// ChoiceProvider collects answers for a list of questions. The returned map
// holds one entry per question key.
type ChoiceProvider interface {
	Ask(ctx context.Context, questions []models.Question) (map[string]string, error)
}

// Installer installs packages into the project at dir and returns its output.
type Installer interface {
	Install(ctx context.Context, dir string, packages []string) (string, error)
}

// Emitter emits a single artifact. *scaffold.Engine satisfies it.
type Emitter interface {
	Emit(ctx context.Context, req scaffold.Request) scaffold.Result
}

// Service runs the scaffold operations.
type Service struct {
	emitter   Emitter
	choices   ChoiceProvider
	installer Installer
	logger    *slog.Logger
}

// NewService creates a Service. choices and installer may be nil when the
// caller never runs operations that need them.
func NewService(emitter Emitter, choices ChoiceProvider, installer Installer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		emitter:   emitter,
		choices:   choices,
		installer: installer,
		logger:    logger,
	}
}

// InitializeStructure creates the structural folders and an empty index.js.
// Each artifact is emitted independently; a failure neither stops nor rolls
// back the others.
func (s *Service) InitializeStructure(ctx context.Context, baseDir string) (*Report, error) {
	report := newReport(OpInitializeStructure)
	s.logger.Info("initializing project structure", "dir", baseDir)

	for _, folder := range defs.StructureFolders() {
		report.add(s.emitter.Emit(ctx, scaffold.NewRequest(
			models.StructureFolder, models.NoVariant, baseDir,
			models.Parameters{models.ParamFolder: folder},
		)))
	}
	report.add(s.emitter.Emit(ctx, scaffold.NewRequest(
		models.BootstrapFile, models.NoVariant, baseDir, nil,
	)))

	return report, report.Err()
}

// GenerateServer writes index.js with the connection code of the chosen backend.
func (s *Service) GenerateServer(ctx context.Context, baseDir string) (*Report, error) {
	report := newReport(OpGenerateServer)

	answers, err := s.ask(ctx, BackendQuestion())
	if err != nil {
		return report, err
	}
	variant, err := parseBackend(answers[QuestionBackend])
	if err != nil {
		return report, err
	}

	s.logger.Info("generating server", "dir", baseDir, "backend", variant.String())
	report.add(s.emitter.Emit(ctx, scaffold.NewRequest(models.BootstrapFile, variant, baseDir, nil)))
	return report, report.Err()
}

// GenerateRouteStub writes routes/app.js. The routes folder must exist.
func (s *Service) GenerateRouteStub(ctx context.Context, baseDir string) (*Report, error) {
	report := newReport(OpGenerateRouteStub)
	s.logger.Info("generating route aggregator", "dir", baseDir)

	report.add(s.emitter.Emit(ctx, scaffold.NewRequest(models.RouteAggregator, models.NoVariant, baseDir, nil)))
	return report, report.Err()
}

// GenerateModelStub writes models/<Entity>.js. The models folder is checked
// before any question is asked so a doomed run never prompts.
func (s *Service) GenerateModelStub(ctx context.Context, baseDir string) (*Report, error) {
	report := newReport(OpGenerateModelStub)

	if err := scaffold.CheckPreconditions(models.ModelFile, baseDir); err != nil {
		report.add(scaffold.Result{Kind: models.ModelFile, Outcome: scaffold.Failed, Err: err})
		return report, report.Err()
	}

	answers, err := s.ask(ctx, BackendQuestion(), EntityNameQuestion())
	if err != nil {
		return report, err
	}
	variant, err := parseBackend(answers[QuestionBackend])
	if err != nil {
		return report, err
	}
	params := models.Parameters{models.ParamEntityName: answers[QuestionEntityName]}
	if err := template.ValidateParameters(models.ModelFile, variant, params); err != nil {
		return report, err
	}

	s.logger.Info("generating model", "dir", baseDir, "backend", variant.String(),
		"entity", template.EntityName(params))
	report.add(s.emitter.Emit(ctx, scaffold.NewRequest(models.ModelFile, variant, baseDir, params)))
	return report, report.Err()
}

// InstallDependencies installs the fixed package list with the installer.
// Failures are not retried and nothing is rolled back.
func (s *Service) InstallDependencies(ctx context.Context, baseDir string) (*Report, error) {
	report := newReport(OpInstallDependencies)
	if s.installer == nil {
		return report, fmt.Errorf("%w: no installer configured", ErrInstallerFailure)
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}

	packages := defs.NodePackages()
	s.logger.Info("installing dependencies", "dir", baseDir, "packages", packages)

	out, err := s.installer.Install(ctx, baseDir, packages)
	report.Output = out
	if err != nil {
		return report, fmt.Errorf("%w: %w", ErrInstallerFailure, err)
	}
	return report, nil
}

func (s *Service) ask(ctx context.Context, questions ...models.Question) (map[string]string, error) {
	if s.choices == nil {
		return nil, fmt.Errorf("%w: no choice provider configured", ErrChoices)
	}
	answers, err := s.choices.Ask(ctx, questions)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrChoices, err)
	}
	return answers, nil
}

func parseBackend(answer string) (models.BackendVariant, error) {
	v, err := models.ParseBackendVariant(answer)
	if err != nil {
		return models.NoVariant, fmt.Errorf("%w: %v", template.ErrInvalidParameter, err)
	}
	return v, nil
}
