package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	TypeRandomForest = "random_forest"
	TypeDecisionTree = "decision_tree"
)

// TreeNode is one node of an exported regression tree. Leaves carry the predicted value.
type TreeNode struct {
	FeatureIdx int     `json:"feature_idx"`
	Threshold  float64 `json:"threshold"`
	LeftChild  int     `json:"left_child"`
	RightChild int     `json:"right_child"`
	Value      float64 `json:"value"`
	IsLeaf     bool    `json:"is_leaf"`
}

type Tree struct {
	Nodes []TreeNode `json:"nodes"`
}

// Forest averages the predictions of its trees.
type Forest struct {
	ModelType string `json:"model_type"`
	Features  int    `json:"n_features"`
	Trees     []Tree `json:"trees"`
}

func (f *Forest) Kind() string {
	return f.ModelType
}

func (f *Forest) NumFeatures() int {
	return f.Features
}

func (f *Forest) Predict(features []float64) (float64, error) {
	if len(f.Trees) == 0 {
		return 0, errors.New("model has no trees")
	}
	if len(features) != f.Features {
		return 0, fmt.Errorf("feature row has %d columns, model expects %d", len(features), f.Features)
	}
	sum := 0.0
	for i := range f.Trees {
		v, err := f.Trees[i].predict(features)
		if err != nil {
			return 0, fmt.Errorf("tree %d: %w", i, err)
		}
		sum += v
	}
	return sum / float64(len(f.Trees)), nil
}

func (t *Tree) predict(features []float64) (float64, error) {
	if len(t.Nodes) == 0 {
		return 0, errors.New("empty tree")
	}
	idx := 0
	// A well-formed tree reaches a leaf in fewer steps than it has nodes.
	for steps := 0; steps <= len(t.Nodes); steps++ {
		node := t.Nodes[idx]
		if node.IsLeaf {
			return node.Value, nil
		}
		if node.FeatureIdx < 0 || node.FeatureIdx >= len(features) {
			return 0, errors.New("feature index out of range")
		}
		if features[node.FeatureIdx] <= node.Threshold {
			idx = node.LeftChild
		} else {
			idx = node.RightChild
		}
		if idx < 0 || idx >= len(t.Nodes) {
			return 0, errors.New("invalid tree state")
		}
	}
	return 0, errors.New("tree has a cycle")
}

func (f *Forest) validate() error {
	if f.Features <= 0 {
		return errors.New("n_features must be positive")
	}
	if len(f.Trees) == 0 {
		return errors.New("model has no trees")
	}
	for i, tree := range f.Trees {
		if len(tree.Nodes) == 0 {
			return fmt.Errorf("tree %d is empty", i)
		}
		for j, node := range tree.Nodes {
			if node.IsLeaf {
				continue
			}
			if node.FeatureIdx < 0 || node.FeatureIdx >= f.Features {
				return fmt.Errorf("tree %d node %d: feature index %d out of range", i, j, node.FeatureIdx)
			}
			if node.LeftChild <= 0 || node.LeftChild >= len(tree.Nodes) || node.RightChild <= 0 || node.RightChild >= len(tree.Nodes) {
				return fmt.Errorf("tree %d node %d: child index out of range", i, j)
			}
		}
	}
	return nil
}

func decodeForest(payload []byte, modelType string) (*Forest, error) {
	var forest Forest
	if err := json.Unmarshal(payload, &forest); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	if forest.ModelType == "" {
		forest.ModelType = modelType
	}
	if forest.ModelType != modelType {
		return nil, fmt.Errorf("model file holds %q, configured %q", forest.ModelType, modelType)
	}
	if modelType == TypeDecisionTree && len(forest.Trees) != 1 {
		return nil, fmt.Errorf("decision tree model must hold exactly one tree, got %d", len(forest.Trees))
	}
	if err := forest.validate(); err != nil {
		return nil, err
	}
	return &forest, nil
}
