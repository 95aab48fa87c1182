package transaction

import (
	"testing"

	mcore "github.com/amirhossein-jamali/agency-ledger/mocks/port/core"
	"github.com/stretchr/testify/mock"
)

// newQuietLogger accepts any number of log calls
func newQuietLogger(t *testing.T) *mcore.MockLogger {
	l := mcore.NewMockLogger(t)
	l.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	l.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	l.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	l.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return l
}
