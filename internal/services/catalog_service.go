package services

import (
	"neotech/internal/domain"
	"neotech/internal/repos"
)

type CatalogService struct {
	Cats  *repos.CategoryRepo
	Prods *repos.ProductRepo
}

func NewCatalogService(cats *repos.CategoryRepo, prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Cats: cats, Prods: prods}
}

func (s *CatalogService) Home() ([]domain.Product, []domain.Category, error) {
	prods, err := s.Prods.ListActive(30)
	if err != nil {
		return nil, nil, err
	}
	cats, err := s.Cats.List()
	if err != nil {
		return nil, nil, err
	}
	return prods, cats, nil
}

func (s *CatalogService) Product(id int64) (domain.Product, []domain.Product, error) {
	p, err := s.Prods.Get(id)
	if err != nil {
		return domain.Product{}, nil, err
	}
	recs, err := s.Prods.Recommendations(id, 4)
	if err != nil {
		return domain.Product{}, nil, err
	}
	return p, recs, nil
}

func (s *CatalogService) Category(id int64) (domain.Category, []domain.Product, error) {
	c, err := s.Cats.Get(id)
	if err != nil {
		return domain.Category{}, nil, err
	}
	prods, err := s.Prods.ListByCategory(id)
	if err != nil {
		return domain.Category{}, nil, err
	}
	return c, prods, nil
}
