package client

import (
	"context"

	"dev.rubentxu.step7-service/internal/core/domain"
)

func (c *Step7Client) ListProjects(ctx context.Context) (domain.ListEnvelope, error) {
	return c.List(ctx, domain.ListProjects())
}

func (c *Step7Client) ListPrograms(ctx context.Context, project string) (domain.ListEnvelope, error) {
	return c.List(ctx, domain.ListPrograms(project))
}

func (c *Step7Client) ListContainers(ctx context.Context, project string) (domain.ListEnvelope, error) {
	return c.List(ctx, domain.ListContainers(project))
}

func (c *Step7Client) ListStations(ctx context.Context, project string) (domain.ListEnvelope, error) {
	return c.List(ctx, domain.ListStations(project))
}

func (c *Step7Client) ListModules(ctx context.Context, project string) (domain.ListEnvelope, error) {
	return c.List(ctx, domain.ListModules(project))
}

func (c *Step7Client) CreateProject(ctx context.Context, projectName, projectDir string) (domain.StatusEnvelope, error) {
	return c.Run(ctx, domain.CreateProject(projectName, projectDir))
}

func (c *Step7Client) CreateLibrary(ctx context.Context, projectName, projectDir string) (domain.StatusEnvelope, error) {
	return c.Run(ctx, domain.CreateLibrary(projectName, projectDir))
}

func (c *Step7Client) RegisterProject(ctx context.Context, projectFilePath string) (domain.StatusEnvelope, error) {
	return c.Run(ctx, domain.RegisterProject(projectFilePath))
}

func (c *Step7Client) RemoveProject(ctx context.Context, project string) (domain.StatusEnvelope, error) {
	return c.Run(ctx, domain.RemoveProject(project))
}

func (c *Step7Client) ImportSourcesDir(ctx context.Context, project, program, sourcesDir string, force bool) (domain.StatusEnvelope, error) {
	return c.Run(ctx, domain.ImportSourcesDir(project, program, sourcesDir, force))
}

func (c *Step7Client) ImportLibSources(ctx context.Context, project, library, libraryProgram, program string, force bool) (domain.StatusEnvelope, error) {
	return c.Run(ctx, domain.ImportLibSources(project, library, libraryProgram, program, force))
}

func (c *Step7Client) ImportLibBlocks(ctx context.Context, project, library, libraryProgram, program string, force bool) (domain.StatusEnvelope, error) {
	return c.Run(ctx, domain.ImportLibBlocks(project, library, libraryProgram, program, force))
}

func (c *Step7Client) ImportSymbols(ctx context.Context, project, symbolFile, program string, allowConflicts bool) (domain.StatusEnvelope, error) {
	return c.Run(ctx, domain.ImportSymbols(project, symbolFile, program, allowConflicts))
}

func (c *Step7Client) CompileSources(ctx context.Context, project, program string, sources []string) (domain.StatusEnvelope, error) {
	return c.Run(ctx, domain.CompileSources(project, program, sources))
}
