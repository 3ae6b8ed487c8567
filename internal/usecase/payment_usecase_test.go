package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"zap_shift/internal/domain/entities"
	"zap_shift/internal/usecase/interfaces"
	mock_interfaces "zap_shift/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type recordingObserver struct {
	outcomes []string
}

func (o *recordingObserver) ObserveSettlement(outcome string) {
	o.outcomes = append(o.outcomes, outcome)
}

func paidSession() entities.CheckoutSession {
	return entities.CheckoutSession{
		ID:            "cs_1",
		PaymentStatus: "paid",
		TransactionID: "pi_1",
		ParcelID:      "P1",
		ParcelName:    "Box",
		AmountTotal:   2000,
		Currency:      "usd",
		CustomerEmail: "a@b.com",
	}
}

func fixedTrackingID(id string) PaymentOption {
	return WithTrackingIDFunc(func(time.Time) (string, error) { return id, nil })
}

func TestPaymentUseCase_ConfirmPayment_Validations(t *testing.T) {
	t.Run("empty session id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		_, err := uc.ConfirmPayment(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		_, err := uc.ConfirmPayment(context.Background(), "cs_1")
		if !errors.Is(err, ErrPaymentGatewayNotConfig) {
			t.Fatalf("expected ErrPaymentGatewayNotConfig, got %v", err)
		}
	})

	t.Run("provider lookup failure is upstream", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		obs := &recordingObserver{}
		uc := NewPaymentUseCase(nil, nil, gateway, WithSettlementObserver(obs))

		gateway.EXPECT().RetrieveSession(gomock.Any(), "cs_1").Return(entities.CheckoutSession{}, errors.New("no such checkout.session"))

		_, err := uc.ConfirmPayment(context.Background(), "cs_1")
		if !errors.Is(err, ErrUpstream) {
			t.Fatalf("expected ErrUpstream, got %v", err)
		}
		if len(obs.outcomes) != 1 || obs.outcomes[0] != SettlementOutcomeFailed {
			t.Fatalf("expected failed outcome, got %v", obs.outcomes)
		}
	})
}

func TestPaymentUseCase_ConfirmPayment_FirstConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	parcels := mock_interfaces.NewMockIParcelRepository(ctrl)
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
	paidAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	obs := &recordingObserver{}
	uc := NewPaymentUseCase(parcels, payments, gateway,
		fixedTrackingID("PRCL-20260314-0A1B2C"),
		WithClock(func() time.Time { return paidAt }),
		WithSettlementObserver(obs),
	)

	gateway.EXPECT().RetrieveSession(gomock.Any(), "cs_1").Return(paidSession(), nil)
	payments.EXPECT().GetByTransactionID(gomock.Any(), "pi_1").Return(entities.Payment{}, nil)
	payments.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
		func(_ context.Context, p entities.Payment) (entities.InsertResult, error) {
			if p.Amount != 20 || p.Currency != "usd" || p.TransactionID != "pi_1" {
				t.Fatalf("unexpected payment: %+v", p)
			}
			if p.ParcelID != "P1" || p.ParcelName != "Box" || p.CustomerEmail != "a@b.com" {
				t.Fatalf("unexpected payment refs: %+v", p)
			}
			if p.TrackingID != "PRCL-20260314-0A1B2C" || !p.PaidAt.Equal(paidAt) || p.PaymentStatus != "paid" {
				t.Fatalf("unexpected payment state: %+v", p)
			}
			if p.ID == "" {
				t.Fatalf("expected generated payment id")
			}
			return entities.InsertResult{Acknowledged: true, InsertedID: p.ID}, nil
		},
	)
	parcels.EXPECT().MarkPaid(gomock.Any(), "P1", "PRCL-20260314-0A1B2C").Return(entities.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)

	res, err := uc.ConfirmPayment(context.Background(), " cs_1 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Settled || res.AlreadySettled {
		t.Fatalf("expected settled result, got %+v", res)
	}
	if res.TrackingID != "PRCL-20260314-0A1B2C" || res.TransactionID != "pi_1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.ModifyParcel.ModifiedCount != 1 || !res.PaymentInfo.Acknowledged {
		t.Fatalf("unexpected write results: %+v", res)
	}
	if len(obs.outcomes) != 1 || obs.outcomes[0] != SettlementOutcomeSettled {
		t.Fatalf("expected settled outcome, got %v", obs.outcomes)
	}
}

func TestPaymentUseCase_ConfirmPayment_AmountConversion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	parcels := mock_interfaces.NewMockIParcelRepository(ctrl)
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
	uc := NewPaymentUseCase(parcels, payments, gateway)

	session := paidSession()
	session.AmountTotal = 1500
	gateway.EXPECT().RetrieveSession(gomock.Any(), "cs_1").Return(session, nil)
	payments.EXPECT().GetByTransactionID(gomock.Any(), "pi_1").Return(entities.Payment{}, nil)
	payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.Payment) (entities.InsertResult, error) {
			if p.Amount != 15 {
				t.Fatalf("expected amount 15, got %v", p.Amount)
			}
			if !IsTrackingID(p.TrackingID) {
				t.Fatalf("unexpected tracking id format: %s", p.TrackingID)
			}
			return entities.InsertResult{Acknowledged: true, InsertedID: p.ID}, nil
		},
	)
	parcels.EXPECT().MarkPaid(gomock.Any(), "P1", gomock.Any()).Return(entities.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)

	if _, err := uc.ConfirmPayment(context.Background(), "cs_1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPaymentUseCase_ConfirmPayment_Replay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	parcels := mock_interfaces.NewMockIParcelRepository(ctrl)
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
	obs := &recordingObserver{}
	uc := NewPaymentUseCase(parcels, payments, gateway, WithSettlementObserver(obs))

	gateway.EXPECT().RetrieveSession(gomock.Any(), "cs_1").Return(paidSession(), nil)
	payments.EXPECT().GetByTransactionID(gomock.Any(), "pi_1").Return(entities.Payment{
		ParcelID:      "P1",
		TransactionID: "pi_1",
		TrackingID:    "PRCL-20260314-0A1B2C",
		PaymentStatus: "paid",
	}, nil)
	parcels.EXPECT().MarkPaid(gomock.Any(), "P1", "PRCL-20260314-0A1B2C").Return(entities.UpdateResult{MatchedCount: 1}, nil)

	res, err := uc.ConfirmPayment(context.Background(), "cs_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.AlreadySettled || res.Settled {
		t.Fatalf("expected replay result, got %+v", res)
	}
	if res.TrackingID != "PRCL-20260314-0A1B2C" || res.TransactionID != "pi_1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if len(obs.outcomes) != 1 || obs.outcomes[0] != SettlementOutcomeReplayed {
		t.Fatalf("expected replayed outcome, got %v", obs.outcomes)
	}
}

func TestPaymentUseCase_ConfirmPayment_NotPaid(t *testing.T) {
	cases := []struct {
		name          string
		transactionID string
	}{
		{name: "unpaid without intent", transactionID: ""},
		{name: "unpaid with intent", transactionID: "pi_9"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			parcels := mock_interfaces.NewMockIParcelRepository(ctrl)
			payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
			gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
			uc := NewPaymentUseCase(parcels, payments, gateway)

			session := paidSession()
			session.PaymentStatus = "unpaid"
			session.TransactionID = tc.transactionID
			gateway.EXPECT().RetrieveSession(gomock.Any(), "cs_1").Return(session, nil)
			if tc.transactionID != "" {
				payments.EXPECT().GetByTransactionID(gomock.Any(), tc.transactionID).Return(entities.Payment{}, nil)
			}

			res, err := uc.ConfirmPayment(context.Background(), "cs_1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Settled || res.AlreadySettled || res.PaymentStatus != "unpaid" {
				t.Fatalf("expected unpaid result, got %+v", res)
			}
			if res.TrackingID != "" {
				t.Fatalf("tracking id must not be issued for unpaid sessions")
			}
		})
	}
}

func TestPaymentUseCase_ConfirmPayment_LostRaceReplaysWinner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	parcels := mock_interfaces.NewMockIParcelRepository(ctrl)
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
	uc := NewPaymentUseCase(parcels, payments, gateway, fixedTrackingID("PRCL-20260314-FFFFFF"))

	winner := entities.Payment{ParcelID: "P1", TransactionID: "pi_1", TrackingID: "PRCL-20260314-000001", PaymentStatus: "paid"}
	gateway.EXPECT().RetrieveSession(gomock.Any(), "cs_1").Return(paidSession(), nil)
	gomock.InOrder(
		payments.EXPECT().GetByTransactionID(gomock.Any(), "pi_1").Return(entities.Payment{}, nil),
		payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.InsertResult{}, interfaces.ErrPaymentAlreadyRecorded),
		payments.EXPECT().GetByTransactionID(gomock.Any(), "pi_1").Return(winner, nil),
		parcels.EXPECT().MarkPaid(gomock.Any(), "P1", "PRCL-20260314-000001").Return(entities.UpdateResult{MatchedCount: 1}, nil),
	)

	res, err := uc.ConfirmPayment(context.Background(), "cs_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.AlreadySettled || res.TrackingID != "PRCL-20260314-000001" {
		t.Fatalf("expected winner replay, got %+v", res)
	}
}

func TestPaymentUseCase_ConfirmPayment_WriteFailures(t *testing.T) {
	t.Run("payment insert error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		parcels := mock_interfaces.NewMockIParcelRepository(ctrl)
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		uc := NewPaymentUseCase(parcels, payments, gateway)

		gateway.EXPECT().RetrieveSession(gomock.Any(), "cs_1").Return(paidSession(), nil)
		payments.EXPECT().GetByTransactionID(gomock.Any(), "pi_1").Return(entities.Payment{}, nil)
		payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.InsertResult{}, errors.New("db-create"))

		_, err := uc.ConfirmPayment(context.Background(), "cs_1")
		if !errors.Is(err, ErrUpstream) {
			t.Fatalf("expected ErrUpstream, got %v", err)
		}
	})

	t.Run("parcel update error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		parcels := mock_interfaces.NewMockIParcelRepository(ctrl)
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		uc := NewPaymentUseCase(parcels, payments, gateway)

		gateway.EXPECT().RetrieveSession(gomock.Any(), "cs_1").Return(paidSession(), nil)
		payments.EXPECT().GetByTransactionID(gomock.Any(), "pi_1").Return(entities.Payment{}, nil)
		payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.InsertResult{Acknowledged: true}, nil)
		parcels.EXPECT().MarkPaid(gomock.Any(), "P1", gomock.Any()).Return(entities.UpdateResult{}, errors.New("db-update"))

		_, err := uc.ConfirmPayment(context.Background(), "cs_1")
		if !errors.Is(err, ErrUpstream) {
			t.Fatalf("expected ErrUpstream, got %v", err)
		}
	})

	t.Run("payment lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		uc := NewPaymentUseCase(nil, payments, gateway)

		gateway.EXPECT().RetrieveSession(gomock.Any(), "cs_1").Return(paidSession(), nil)
		payments.EXPECT().GetByTransactionID(gomock.Any(), "pi_1").Return(entities.Payment{}, errors.New("db"))

		_, err := uc.ConfirmPayment(context.Background(), "cs_1")
		if !errors.Is(err, ErrUpstream) {
			t.Fatalf("expected ErrUpstream, got %v", err)
		}
	})

	t.Run("paid session without intent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		uc := NewPaymentUseCase(nil, nil, gateway)

		session := paidSession()
		session.TransactionID = ""
		gateway.EXPECT().RetrieveSession(gomock.Any(), "cs_1").Return(session, nil)

		_, err := uc.ConfirmPayment(context.Background(), "cs_1")
		if !errors.Is(err, ErrUpstream) || !errors.Is(err, ErrSessionMissingIntent) {
			t.Fatalf("expected upstream missing intent error, got %v", err)
		}
	})

	t.Run("tracking id entropy failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		uc := NewPaymentUseCase(nil, payments, gateway, WithTrackingIDFunc(func(time.Time) (string, error) {
			return "", errors.New("entropy")
		}))

		gateway.EXPECT().RetrieveSession(gomock.Any(), "cs_1").Return(paidSession(), nil)
		payments.EXPECT().GetByTransactionID(gomock.Any(), "pi_1").Return(entities.Payment{}, nil)

		_, err := uc.ConfirmPayment(context.Background(), "cs_1")
		if err == nil || err.Error() != "entropy" {
			t.Fatalf("expected entropy error, got %v", err)
		}
	})
}

func TestPaymentUseCase_ConfirmPayment_MissingParcelKeepsPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	parcels := mock_interfaces.NewMockIParcelRepository(ctrl)
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
	uc := NewPaymentUseCase(parcels, payments, gateway)

	gateway.EXPECT().RetrieveSession(gomock.Any(), "cs_1").Return(paidSession(), nil)
	payments.EXPECT().GetByTransactionID(gomock.Any(), "pi_1").Return(entities.Payment{}, nil)
	payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.InsertResult{Acknowledged: true, InsertedID: "pay-1"}, nil)
	parcels.EXPECT().MarkPaid(gomock.Any(), "P1", gomock.Any()).Return(entities.UpdateResult{}, nil)

	res, err := uc.ConfirmPayment(context.Background(), "cs_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Settled || res.ModifyParcel.MatchedCount != 0 || res.PaymentInfo.InsertedID != "pay-1" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestPaymentUseCase_ConfirmPayment_ReplayRetriesParcelUpdate(t *testing.T) {
	t.Run("replay marks a parcel left unpaid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		parcels := mock_interfaces.NewMockIParcelRepository(ctrl)
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		uc := NewPaymentUseCase(parcels, payments, gateway)

		gateway.EXPECT().RetrieveSession(gomock.Any(), "cs_1").Return(paidSession(), nil)
		payments.EXPECT().GetByTransactionID(gomock.Any(), "pi_1").Return(entities.Payment{
			ParcelID: "P1", TransactionID: "pi_1", TrackingID: "PRCL-20260314-0A1B2C", PaymentStatus: "paid",
		}, nil)
		parcels.EXPECT().MarkPaid(gomock.Any(), "P1", "PRCL-20260314-0A1B2C").Return(entities.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)

		res, err := uc.ConfirmPayment(context.Background(), "cs_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.AlreadySettled || res.ModifyParcel.ModifiedCount != 1 {
			t.Fatalf("expected replay that repaired the parcel, got %+v", res)
		}
	})

	t.Run("replay parcel update failure is upstream", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		parcels := mock_interfaces.NewMockIParcelRepository(ctrl)
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		obs := &recordingObserver{}
		uc := NewPaymentUseCase(parcels, payments, gateway, WithSettlementObserver(obs))

		gateway.EXPECT().RetrieveSession(gomock.Any(), "cs_1").Return(paidSession(), nil)
		payments.EXPECT().GetByTransactionID(gomock.Any(), "pi_1").Return(entities.Payment{
			ParcelID: "P1", TransactionID: "pi_1", TrackingID: "PRCL-20260314-0A1B2C",
		}, nil)
		parcels.EXPECT().MarkPaid(gomock.Any(), "P1", "PRCL-20260314-0A1B2C").Return(entities.UpdateResult{}, errors.New("timeout"))

		_, err := uc.ConfirmPayment(context.Background(), "cs_1")
		if !errors.Is(err, ErrUpstream) {
			t.Fatalf("expected ErrUpstream, got %v", err)
		}
		if len(obs.outcomes) != 1 || obs.outcomes[0] != SettlementOutcomeFailed {
			t.Fatalf("expected failed outcome, got %v", obs.outcomes)
		}
	})
}

func TestPaymentUseCase_ConfirmPayment_TrackingIDConflictKeepsPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	parcels := mock_interfaces.NewMockIParcelRepository(ctrl)
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
	uc := NewPaymentUseCase(parcels, payments, gateway, fixedTrackingID("PRCL-20260314-BBBBBB"))

	gateway.EXPECT().RetrieveSession(gomock.Any(), "cs_1").Return(paidSession(), nil)
	payments.EXPECT().GetByTransactionID(gomock.Any(), "pi_1").Return(entities.Payment{}, nil)
	payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.InsertResult{Acknowledged: true, InsertedID: "pay-2"}, nil)
	parcels.EXPECT().MarkPaid(gomock.Any(), "P1", "PRCL-20260314-BBBBBB").Return(entities.UpdateResult{}, interfaces.ErrTrackingIDConflict)

	res, err := uc.ConfirmPayment(context.Background(), "cs_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Settled || res.ModifyParcel.MatchedCount != 1 || res.ModifyParcel.ModifiedCount != 0 {
		t.Fatalf("expected matched but unmodified parcel, got %+v", res)
	}
}

func TestPaymentUseCase_ConfirmPayment_TrackingIDDatedBySettlementClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	parcels := mock_interfaces.NewMockIParcelRepository(ctrl)
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
	brt := time.FixedZone("BRT", -3*60*60)
	now := time.Date(2026, 10, 15, 23, 30, 0, 0, brt)
	uc := NewPaymentUseCase(parcels, payments, gateway, WithClock(func() time.Time { return now }))

	gateway.EXPECT().RetrieveSession(gomock.Any(), "cs_1").Return(paidSession(), nil)
	payments.EXPECT().GetByTransactionID(gomock.Any(), "pi_1").Return(entities.Payment{}, nil)
	payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.Payment) (entities.InsertResult, error) {
			if !p.PaidAt.Equal(now) || p.PaidAt.Location() != time.UTC {
				t.Fatalf("expected UTC paidAt of the clock, got %v", p.PaidAt)
			}
			return entities.InsertResult{Acknowledged: true}, nil
		},
	)
	parcels.EXPECT().MarkPaid(gomock.Any(), "P1", gomock.Any()).Return(entities.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)

	res, err := uc.ConfirmPayment(context.Background(), "cs_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(res.TrackingID, "PRCL-20261016-") || !IsTrackingID(res.TrackingID) {
		t.Fatalf("expected tracking id dated 20261016, got %q", res.TrackingID)
	}
}

func TestPaymentUseCase_CreateCheckoutSession(t *testing.T) {
	valid := entities.CheckoutRequest{ParcelID: "P1", ParcelName: "Box", Cost: 20, SenderEmail: "a@b.com"}

	t.Run("invalid input", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		for _, req := range []entities.CheckoutRequest{
			{ParcelName: "Box", Cost: 20, SenderEmail: "a@b.com"},
			{ParcelID: "P1", Cost: 20, SenderEmail: "a@b.com"},
			{ParcelID: "P1", ParcelName: "Box", SenderEmail: "a@b.com"},
			{ParcelID: "P1", ParcelName: "Box", Cost: 20},
		} {
			if _, err := uc.CreateCheckoutSession(context.Background(), req); !errors.Is(err, ErrInvalidCheckoutInput) {
				t.Fatalf("expected ErrInvalidCheckoutInput for %+v, got %v", req, err)
			}
		}
	})

	t.Run("parcel not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		parcels := mock_interfaces.NewMockIParcelRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		uc := NewPaymentUseCase(parcels, nil, gateway)

		parcels.EXPECT().GetByID(gomock.Any(), "P1").Return(entities.Parcel{}, nil)

		if _, err := uc.CreateCheckoutSession(context.Background(), valid); !errors.Is(err, ErrParcelNotFound) {
			t.Fatalf("expected ErrParcelNotFound, got %v", err)
		}
	})

	t.Run("parcel already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		parcels := mock_interfaces.NewMockIParcelRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		uc := NewPaymentUseCase(parcels, nil, gateway)

		parcels.EXPECT().GetByID(gomock.Any(), "P1").Return(entities.Parcel{ID: "P1", DeliveryStatus: entities.DeliveryStatusPaid, TrackingID: "PRCL-20260314-0A1B2C"}, nil)

		if _, err := uc.CreateCheckoutSession(context.Background(), valid); !errors.Is(err, ErrParcelAlreadyPaid) {
			t.Fatalf("expected ErrParcelAlreadyPaid, got %v", err)
		}
	})

	t.Run("provider failure is upstream", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		parcels := mock_interfaces.NewMockIParcelRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		uc := NewPaymentUseCase(parcels, nil, gateway)

		parcels.EXPECT().GetByID(gomock.Any(), "P1").Return(entities.Parcel{ID: "P1", Cost: 20, DeliveryStatus: entities.DeliveryStatusCreated}, nil)
		gateway.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(entities.CheckoutSession{}, errors.New("stripe down"))

		if _, err := uc.CreateCheckoutSession(context.Background(), valid); !errors.Is(err, ErrUpstream) {
			t.Fatalf("expected ErrUpstream, got %v", err)
		}
	})

	t.Run("success uses stored cost", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		parcels := mock_interfaces.NewMockIParcelRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		uc := NewPaymentUseCase(parcels, nil, gateway)

		parcels.EXPECT().GetByID(gomock.Any(), "P1").Return(entities.Parcel{ID: "P1", Cost: 35.5, DeliveryStatus: entities.DeliveryStatusCreated}, nil)
		gateway.EXPECT().CreateSession(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error) {
				if req.Cost != 35.5 || req.ParcelID != "P1" || req.ParcelName != "Box" || req.SenderEmail != "a@b.com" {
					t.Fatalf("unexpected checkout request: %+v", req)
				}
				return entities.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.com/c/pay/cs_1"}, nil
			},
		)

		url, err := uc.CreateCheckoutSession(context.Background(), valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if url != "https://checkout.stripe.com/c/pay/cs_1" {
			t.Fatalf("unexpected url: %s", url)
		}
	})
}

func TestPaymentUseCase_ListByEmail(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		if _, err := uc.ListByEmail(context.Background(), " ", "a@b.com"); !errors.Is(err, ErrInvalidPaymentEmail) {
			t.Fatalf("expected ErrInvalidPaymentEmail, got %v", err)
		}
	})

	t.Run("token email mismatch", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		if _, err := uc.ListByEmail(context.Background(), "a@b.com", "other@b.com"); !errors.Is(err, ErrPaymentEmailMismatch) {
			t.Fatalf("expected ErrPaymentEmailMismatch, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(nil, payments, nil)
		payments.EXPECT().ListByCustomerEmail(gomock.Any(), "a@b.com").Return(nil, errors.New("db"))

		if _, err := uc.ListByEmail(context.Background(), "a@b.com", "A@B.com"); !errors.Is(err, ErrUpstream) {
			t.Fatalf("expected ErrUpstream, got %v", err)
		}
	})

	t.Run("queries the lowercased email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(nil, payments, nil)
		payments.EXPECT().ListByCustomerEmail(gomock.Any(), "a@b.com").Return([]entities.Payment{{TransactionID: "pi_1"}}, nil)

		res, err := uc.ListByEmail(context.Background(), "A@B.com", "a@b.com")
		if err != nil || len(res) != 1 {
			t.Fatalf("expected one payment, got %v %v", res, err)
		}
	})

	t.Run("sorted newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(nil, payments, nil)
		now := time.Now().UTC()
		payments.EXPECT().ListByCustomerEmail(gomock.Any(), "a@b.com").Return([]entities.Payment{
			{TransactionID: "old", PaidAt: now.Add(-2 * time.Hour)},
			{TransactionID: "new", PaidAt: now},
			{TransactionID: "mid", PaidAt: now.Add(-time.Hour)},
		}, nil)

		res, err := uc.ListByEmail(context.Background(), "a@b.com", "a@b.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 3 || res[0].TransactionID != "new" || res[1].TransactionID != "mid" || res[2].TransactionID != "old" {
			t.Fatalf("unexpected order: %+v", res)
		}
	})
}
