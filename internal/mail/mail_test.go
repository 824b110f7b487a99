// AngelaMos | 2026
// mail_test.go

package mail

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cricketacademy/academy-api/internal/config"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, to, subject, body string) error {
	return m.Called(ctx, to, subject, body).Error(0)
}

func TestSendVerificationOTP(t *testing.T) {
	sender := new(mockSender)
	m, err := NewWithSender(sender, "Cricket Academy", nil)
	require.NoError(t, err)

	sender.On("Send", mock.Anything, "player@example.com", "Your verification code",
		mock.MatchedBy(func(body string) bool {
			return strings.Contains(body, "482913") &&
				strings.Contains(body, "30 minutes") &&
				strings.Contains(body, "Cricket Academy")
		})).Return(nil)

	require.NoError(t, m.SendVerificationOTP(context.Background(), "player@example.com", "Rohit", "482913", 30*time.Minute))
	sender.AssertExpectations(t)
}

func TestSendPasswordResetEscapesLink(t *testing.T) {
	sender := new(mockSender)
	m, err := NewWithSender(sender, "Cricket Academy", nil)
	require.NoError(t, err)

	var body string
	sender.On("Send", mock.Anything, "a@b.co", "Reset your password", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { body = args.String(3) }).
		Return(nil)

	require.NoError(t, m.SendPasswordReset(context.Background(), "a@b.co", "<b>Eve</b>", "https://x.test/reset?token=abc"))
	assert.Contains(t, body, "https://x.test/reset?token=abc")
	assert.NotContains(t, body, "<b>Eve</b>")
}

func TestSendBookingNotice(t *testing.T) {
	sender := new(mockSender)
	m, err := NewWithSender(sender, "Cricket Academy", nil)
	require.NoError(t, err)

	sender.On("Send", mock.Anything, "c@d.co", "Booking confirmed",
		mock.MatchedBy(func(body string) bool {
			return strings.Contains(body, "Main Ground") &&
				strings.Contains(body, "09:00 - 11:00") &&
				strings.Contains(body, "INR 2400.00")
		})).Return(nil)

	err = m.SendBookingNotice(context.Background(), "c@d.co", BookingNotice{
		Subject:      "Booking confirmed",
		Headline:     "Your booking is confirmed.",
		CustomerName: "Shubman",
		BookingID:    "b-1",
		ResourceName: "Main Ground",
		Date:         "2026-10-20",
		StartTime:    "09:00",
		EndTime:      "11:00",
		Currency:     "INR",
		Amount:       2400,
	})
	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestBuildMessageHeaders(t *testing.T) {
	msg := string(buildMessage("Academy <no-reply@academy.test>", "x@y.z", "Hello", "<p>hi</p>"))

	head, body, ok := strings.Cut(msg, "\r\n\r\n")
	require.True(t, ok)
	assert.Contains(t, head, "To: x@y.z")
	assert.Contains(t, head, "Content-Type: text/html; charset=UTF-8")
	assert.Equal(t, "<p>hi</p>", body)
}

func TestNewFallsBackToLogSender(t *testing.T) {
	m, err := New(config.SMTPConfig{}, "Academy", nil)
	require.NoError(t, err)
	_, isLog := m.sender.(*LogSender)
	assert.True(t, isLog)
	assert.NoError(t, m.SendPasswordReset(context.Background(), "a@b.co", "A", "https://x"))
}

func TestHumanDuration(t *testing.T) {
	assert.Equal(t, "30 minutes", humanDuration(30*time.Minute))
	assert.Equal(t, "1 hour", humanDuration(time.Hour))
	assert.Equal(t, "2 hours", humanDuration(2*time.Hour))
}
