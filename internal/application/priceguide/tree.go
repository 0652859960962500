package priceguide

import (
	"context"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

// Tree construye el bosque de categorías de la empresa con conteos de ítems
// en cascada. Dos consultas (categorías + estadísticas agrupadas de ítems),
// adyacencia en memoria, nada de N+1.
//
// Los nodos cuyo padre quedó excluido por el filtro se promueven a raíces
// sintéticas en lugar de desaparecer. Cada lista de hermanos conserva el
// orden (sort_order, id) que entrega el repositorio.
func (uc *CategoryUseCase) Tree(_ context.Context, companyID string, filter repository.CategoryFilter) ([]*dto.TreeNode, error) {
	cats, err := uc.catRepo.ListByCompany(companyID, filter)
	if err != nil {
		return nil, err
	}
	stats, err := uc.itemRepo.StatsByCategory(companyID)
	if err != nil {
		return nil, err
	}

	nodes := make(map[string]*dto.TreeNode, len(cats))
	for _, c := range cats {
		node := &dto.TreeNode{CategoryResponse: *toCategoryResponse(c)}
		if s, ok := stats[c.ID]; ok {
			node.DirectItemCount = s.Count
			node.DirectTotalPrice = s.TotalPrice
		}
		nodes[c.ID] = node
	}

	// Raíces reales + raíces sintéticas (padre excluido por el filtro).
	// El recorrido en el orden del repositorio preserva el orden de hermanos.
	var roots []*dto.TreeNode
	for _, c := range cats {
		node := nodes[c.ID]
		if c.ParentID == "" {
			roots = append(roots, node)
			continue
		}
		if parent, ok := nodes[c.ParentID]; ok {
			parent.Children = append(parent.Children, node)
		} else {
			roots = append(roots, node)
		}
	}

	// Totales en cascada en UNA sola pasada post-orden (iterativa): cada nodo
	// se agrega exactamente una vez, sin recomputar subárboles por nodo.
	type frame struct {
		node     *dto.TreeNode
		expanded bool
	}
	stack := make([]frame, 0, len(nodes))
	for _, r := range roots {
		stack = append(stack, frame{node: r})
	}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if !top.expanded {
			top.expanded = true
			for _, child := range top.node.Children {
				stack = append(stack, frame{node: child})
			}
			continue
		}
		node := top.node
		stack = stack[:len(stack)-1]

		node.ItemCount = node.DirectItemCount
		node.TotalPrice = node.DirectTotalPrice
		for _, child := range node.Children {
			node.ItemCount += child.ItemCount
			node.TotalPrice = node.TotalPrice.Add(child.TotalPrice)
		}
	}

	if roots == nil {
		roots = []*dto.TreeNode{}
	}
	return roots, nil
}
