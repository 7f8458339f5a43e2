package hud

import (
	"terrasky/internal/building"
	"terrasky/internal/economy"
	"terrasky/internal/geom"
	"terrasky/internal/item"
)

// ButtonH is the height of one menu button, including the gap below it.
const ButtonH = 2

// MenuWidth is the body width of the recipe and upgrade panels.
const MenuWidth = 44

func buttonRect(i int) geom.Rect {
	return geom.Rect{X: padX, Y: padY + i*ButtonH, W: MenuWidth - 2*padX, H: 1}
}

func buttonAt(local geom.Point, n int) int {
	for i := range n {
		if buttonRect(i).Contains(local) {
			return i
		}
	}
	return -1
}

// Recipe is one construction option.
type Recipe struct {
	Kind building.Kind
	Cost item.Tally
}

// RecipePanel lists construction recipes; clicking one asks Build for it.
type RecipePanel struct {
	Recipes []Recipe
	Build   func(building.Kind)
}

// BodySize returns the body dimensions the panel needs.
func (p *RecipePanel) BodySize() (w, h int) {
	return MenuWidth, padY + len(p.Recipes)*ButtonH
}

// ButtonRect returns the body-local area of button i.
func (p *RecipePanel) ButtonRect(i int) geom.Rect { return buttonRect(i) }

func (p *RecipePanel) Click(local geom.Point) {
	if i := buttonAt(local, len(p.Recipes)); i >= 0 && p.Build != nil {
		p.Build(p.Recipes[i].Kind)
	}
}

// UpgradePanel lists economy upgrades with their science cost.
type UpgradePanel struct {
	Economy *economy.Economy
	Buy     func(economy.Upgrade)
}

// BodySize returns the body dimensions the panel needs.
func (p *UpgradePanel) BodySize() (w, h int) {
	return MenuWidth, padY + len(economy.Upgrades)*ButtonH
}

// ButtonRect returns the body-local area of button i.
func (p *UpgradePanel) ButtonRect(i int) geom.Rect { return buttonRect(i) }

func (p *UpgradePanel) Click(local geom.Point) {
	if i := buttonAt(local, len(economy.Upgrades)); i >= 0 && p.Buy != nil {
		p.Buy(economy.Upgrades[i])
	}
}
