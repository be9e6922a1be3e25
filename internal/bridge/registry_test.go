package bridge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	meso int32
}

func (f *fakeClient) GrantMeso(amount int32) { f.meso += amount }
func (f *fakeClient) GrantItem(int32, int16) {}
func (f *fakeClient) Level() uint8           { return 1 }
func (f *fakeClient) Job() int32             { return 0 }
func (f *fakeClient) StartQuest(int32)       {}
func (f *fakeClient) CompleteQuest(int32)    {}
func (f *fakeClient) Warp(int32, int32)      {}
func (f *fakeClient) ChangeJob(int32)        {}
func (f *fakeClient) AwardExp(int32)         {}
func (f *fakeClient) ChangeMap(int32)        {}
func (f *fakeClient) Say(string)             {}

func TestRegistryHandlesAreUniqueAndResolve(t *testing.T) {
	reg := NewRegistry()
	c1 := &fakeClient{}
	c2 := &fakeClient{}

	h1 := reg.RegisterClient(c1)
	h2 := reg.RegisterClient(c2)
	require.NotEqual(t, h1, h2)

	got, ok := reg.client(h1)
	require.True(t, ok)
	require.Same(t, c1, got)
}

func TestForgetClientInvalidatesHandle(t *testing.T) {
	reg := NewRegistry()
	h := reg.RegisterClient(&fakeClient{})
	reg.ForgetClient(h)

	_, ok := reg.client(h)
	require.False(t, ok)
}
