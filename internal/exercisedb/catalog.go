package exercisedb

import (
	"sort"
	"strings"
)

const DefaultCategoryName = "Geral"

type Exercise struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Category         int    `json:"category"`
	Muscles          []int  `json:"muscles"`
	MusclesSecondary []int  `json:"muscles_secondary"`
}

type Image struct {
	ID       int    `json:"id"`
	Exercise int    `json:"exercise"`
	Image    string `json:"image"`
	IsMain   bool   `json:"is_main"`
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Catalog is an immutable lookup view over one fetch of the catalog.
type Catalog struct {
	exercises  []Exercise
	categories []Category
	mainImage  map[int]string
	anyImage   map[int]string
	category   map[int]string
}

func NewCatalog(exercises []Exercise, images []Image, categories []Category) *Catalog {
	c := &Catalog{
		exercises:  exercises,
		categories: categories,
		mainImage:  make(map[int]string),
		anyImage:   make(map[int]string),
		category:   make(map[int]string, len(categories)),
	}
	for _, img := range images {
		if img.Image == "" {
			continue
		}
		if img.IsMain {
			if _, ok := c.mainImage[img.Exercise]; !ok {
				c.mainImage[img.Exercise] = img.Image
			}
		}
		if _, ok := c.anyImage[img.Exercise]; !ok {
			c.anyImage[img.Exercise] = img.Image
		}
	}
	for _, cat := range categories {
		c.category[cat.ID] = cat.Name
	}
	return c
}

// ExerciseImage returns the main image of the exercise, else any of its
// images.
func (c *Catalog) ExerciseImage(exerciseID int) (string, bool) {
	if img, ok := c.mainImage[exerciseID]; ok {
		return img, true
	}
	img, ok := c.anyImage[exerciseID]
	return img, ok
}

func (c *Catalog) CategoryName(categoryID int) string {
	if name, ok := c.category[categoryID]; ok && name != "" {
		return name
	}
	return DefaultCategoryName
}

// ExercisesByCategory returns every exercise for category 0.
func (c *Catalog) ExercisesByCategory(categoryID int) []Exercise {
	if categoryID == 0 {
		return c.exercises
	}
	var filtered []Exercise
	for _, e := range c.exercises {
		if e.Category == categoryID {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func (c *Catalog) Categories() []Category {
	sorted := make([]Category, len(c.categories))
	copy(sorted, c.categories)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}

// Search filters by category and a case insensitive query matched against
// name and description.
func (c *Catalog) Search(query string, categoryID int) []Exercise {
	query = strings.ToLower(strings.TrimSpace(query))
	candidates := c.ExercisesByCategory(categoryID)
	if query == "" {
		return candidates
	}

	var found []Exercise
	for _, e := range candidates {
		if strings.Contains(strings.ToLower(e.Name), query) ||
			strings.Contains(strings.ToLower(e.Description), query) {
			found = append(found, e)
		}
	}
	return found
}
