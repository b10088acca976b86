package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/VamsidharReddy01/MyRestaurant/internal/entity"
	"github.com/VamsidharReddy01/MyRestaurant/internal/repository"
)

// MenuService serves the configured restaurant's catalog as a nested
// read-only view.
type MenuService struct {
	catalogRepo    repository.CatalogRepository
	restaurantSlug string
}

func NewMenuService(catalogRepo repository.CatalogRepository, restaurantSlug string) *MenuService {
	return &MenuService{
		catalogRepo:    catalogRepo,
		restaurantSlug: restaurantSlug,
	}
}

type MenuView struct {
	ID         int                `json:"id"`
	Name       string             `json:"name"`
	Address    string             `json:"address"`
	Categories []MenuCategoryView `json:"categories"`
}

type MenuCategoryView struct {
	ID    int            `json:"id"`
	Name  string         `json:"name"`
	Items []MenuItemView `json:"items"`
}

type MenuItemView struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Rating      string `json:"rating"`
	IsVeg       bool   `json:"is_veg"`
	Available   bool   `json:"available"`
}

// GetMenu returns the restaurant with its categories and each category's
// items. Items without a category do not appear in the nested view.
func (s *MenuService) GetMenu(ctx context.Context) (*MenuView, error) {
	restaurant, err := s.catalogRepo.GetRestaurantBySlug(ctx, s.restaurantSlug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRestaurant
		}
		return nil, err
	}

	categories, err := s.catalogRepo.GetCategories(ctx, restaurant.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Error loading categories")
		return nil, err
	}

	items, err := s.catalogRepo.GetMenuItems(ctx, restaurant.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Error loading menu items")
		return nil, err
	}

	itemsByCategory := make(map[int][]MenuItemView)
	for _, item := range items {
		if item.CategoryID == nil {
			continue
		}
		itemsByCategory[*item.CategoryID] = append(itemsByCategory[*item.CategoryID], MenuItemView{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price.StringFixed(2),
			Rating:      item.Rating.StringFixed(1),
			IsVeg:       item.IsVeg,
			Available:   item.Available,
		})
	}

	view := &MenuView{
		ID:         restaurant.ID,
		Name:       restaurant.Name,
		Address:    restaurant.Address,
		Categories: make([]MenuCategoryView, 0, len(categories)),
	}
	for _, category := range categories {
		categoryView := MenuCategoryView{
			ID:    category.ID,
			Name:  category.Name,
			Items: itemsByCategory[category.ID],
		}
		if categoryView.Items == nil {
			categoryView.Items = []MenuItemView{}
		}
		view.Categories = append(view.Categories, categoryView)
	}

	return view, nil
}

// GetTables lists the restaurant's tables for the table picker.
func (s *MenuService) GetTables(ctx context.Context) ([]*entity.Table, error) {
	restaurant, err := s.catalogRepo.GetRestaurantBySlug(ctx, s.restaurantSlug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRestaurant
		}
		return nil, err
	}

	return s.catalogRepo.GetTables(ctx, restaurant.ID)
}
