package auth

import (
	"sync"
)

var _ passwordHasher = &passwordHasherMock{}

type passwordHasherMock struct {
	CheckFunc func(hash string, password string) error
	HashFunc  func(password string) (string, error)

	calls struct {
		Check []struct {
			Hash     string
			Password string
		}
		Hash []struct {
			Password string
		}
	}
	lockCheck sync.RWMutex
	lockHash  sync.RWMutex
}

func (mock *passwordHasherMock) Check(hash string, password string) error {
	if mock.CheckFunc == nil {
		panic("passwordHasherMock.CheckFunc: method is nil but passwordHasher.Check was just called")
	}
	callInfo := struct {
		Hash     string
		Password string
	}{
		Hash:     hash,
		Password: password,
	}
	mock.lockCheck.Lock()
	mock.calls.Check = append(mock.calls.Check, callInfo)
	mock.lockCheck.Unlock()
	return mock.CheckFunc(hash, password)
}

func (mock *passwordHasherMock) CheckCalls() []struct {
	Hash     string
	Password string
} {
	mock.lockCheck.RLock()
	calls := mock.calls.Check
	mock.lockCheck.RUnlock()
	return calls
}

func (mock *passwordHasherMock) Hash(password string) (string, error) {
	if mock.HashFunc == nil {
		panic("passwordHasherMock.HashFunc: method is nil but passwordHasher.Hash was just called")
	}
	callInfo := struct {
		Password string
	}{
		Password: password,
	}
	mock.lockHash.Lock()
	mock.calls.Hash = append(mock.calls.Hash, callInfo)
	mock.lockHash.Unlock()
	return mock.HashFunc(password)
}

func (mock *passwordHasherMock) HashCalls() []struct {
	Password string
} {
	mock.lockHash.RLock()
	calls := mock.calls.Hash
	mock.lockHash.RUnlock()
	return calls
}
