package mocks

//go:generate mockgen -source=./../proposal/store.go -destination=./proposalMocks/store_mock.go -package=proposalMocks
//go:generate mockgen -source=./../proposal/controller.go -destination=./proposalMocks/controller_mock.go -package=proposalMocks
