package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/league --output domain/league --outpkg leaguemock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/referral --output domain/referral --outpkg referralmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Gateway --dir ../domain/subscription --output domain/subscription --outpkg subscriptionmock --filename gateway_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Gateway --dir ../domain/share --output domain/share --outpkg sharemock --filename gateway_mock.go
