package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCandidate(t *testing.T) {
	assert.True(t, isCandidate("hmm"))
	assert.True(t, isCandidate("shouldn't"))
	assert.False(t, isCandidate("don't"), "already in the exception table")
	assert.False(t, isCandidate("cat"))
	assert.False(t, isCandidate(""))
}

func TestRank(t *testing.T) {
	results := rank(map[string]int{"brr": 3, "hmm": 7, "psst": 3, "tsk": 1})
	assert.Equal(t, []result{{"hmm", 7}, {"brr", 3}, {"psst", 3}}, results)
}

func TestSources(t *testing.T) {
	assert.Equal(t, "hey there", sources["gen-chat"].lineParser(`user,2021-01-01,general," hey there"`))
	assert.Equal(t, "", sources["gen-chat"].lineParser("too,short"))
	assert.Equal(t, "it's ok", sources["plain"].lineParser("it's ok"))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "K AE1 T", describe("cat"))
	assert.Equal(t, "HH M", describe("hmm"))
}
