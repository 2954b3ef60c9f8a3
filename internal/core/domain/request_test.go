package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/mcvm/internal/core/domain"
)

func TestPackageRequest_Chain(t *testing.T) {
	root := domain.UserRequest(domain.NewPackageID("create"))
	dep := root.Child(domain.NewPackageID("flywheel"), domain.SourceDependency)
	leaf := dep.Child(domain.NewPackageID("forge-config"), domain.SourceBundled)

	assert.Equal(t, "create -> flywheel -> forge-config", domain.FormatChain(leaf.Chain()))
	assert.Equal(t, "create", domain.FormatChain(root.Chain()))

	assert.Equal(t, domain.SourceBundled, leaf.Source().Kind)
	assert.Same(t, dep, leaf.Source().Parent)
	assert.Nil(t, root.Source().Parent)
}

func TestPackageRequest_IdentityIgnoresSource(t *testing.T) {
	id := domain.NewPackageID("sodium")
	user := domain.UserRequest(id)
	dep := domain.UserRequest(domain.NewPackageID("iris")).Child(id, domain.SourceDependency)

	assert.True(t, user.Equal(dep))
	assert.Equal(t, 0, user.Compare(dep))
	assert.Equal(t, "sodium", dep.String())
}

func TestSourceKind_String(t *testing.T) {
	assert.Equal(t, "user", domain.SourceUserRequire.String())
	assert.Equal(t, "dependency", domain.SourceDependency.String())
	assert.Equal(t, "extension", domain.SourceExtension.String())
	assert.Equal(t, "bundled", domain.SourceBundled.String())
}
