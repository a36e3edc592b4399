package document

import "context"

type ServiceDocument interface {
	List(ctx context.Context, page, size int64) ([]Document, error)
	ListAll(ctx context.Context) ([]Document, error)
	GetByID(ctx context.Context, id string) ([]Document, error)
	Create(ctx context.Context, doc Document) (*CreateResult, error)
	Upsert(ctx context.Context, id string, doc Document) (*UpsertResult, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)
	Count(ctx context.Context) (int64, error)
}

type Service struct {
	Repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repo: repo}
}

func (s *Service) List(ctx context.Context, page, size int64) ([]Document, error) {
	if page < 0 || size < 0 {
		return s.ListAll(ctx)
	}
	return s.Repo.List(ctx, page, size)
}

func (s *Service) ListAll(ctx context.Context) ([]Document, error) {
	return s.Repo.List(ctx, -1, -1)
}

func (s *Service) GetByID(ctx context.Context, id string) ([]Document, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, doc Document) (*CreateResult, error) {
	return s.Repo.Create(ctx, doc)
}

func (s *Service) Upsert(ctx context.Context, id string, doc Document) (*UpsertResult, error) {
	return s.Repo.Upsert(ctx, id, doc)
}

func (s *Service) Delete(ctx context.Context, id string) (*DeleteResult, error) {
	return s.Repo.Delete(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.Repo.Count(ctx)
}
