// Package mocks provides function-field mocks shared by the API and
// middleware tests.
//
// Each mock implements one interface. Set the Fn field of a method to
// control its behavior; when it is nil the mock returns its default
// fields (for example Claims and ValidateErr on MockJWTService).
//
//	jwtService := &mocks.MockJWTService{
//	    ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
//	        return nil, auth.ErrExpiredToken
//	    },
//	}
package mocks
