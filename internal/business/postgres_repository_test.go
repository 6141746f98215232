package business

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
)

func infoRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "name", "phone", "address", "email", "website", "description", "created_at", "updated_at",
	})
}

func TestSave(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	repo := newPostgresRepositoryWithQuerier(mock)

	mock.ExpectExec("INSERT INTO business_info").
		WithArgs(pgxmock.AnyArg(), "Mindwell Psychology", "+61298765432", "", "", "", "", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	info := &Info{Name: "Mindwell Psychology", Phone: "+61298765432"}
	if err := repo.Save(context.Background(), info); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if !strings.HasPrefix(info.ID, "BIZ-") {
		t.Errorf("business ID = %q, want BIZ- prefix", info.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestGetNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	repo := newPostgresRepositoryWithQuerier(mock)

	mock.ExpectQuery("SELECT id, name, phone").
		WithArgs("BIZ-missing").
		WillReturnRows(infoRows())

	_, err = repo.Get(context.Background(), "BIZ-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestGet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	repo := newPostgresRepositoryWithQuerier(mock)

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT id, name, phone").
		WithArgs("BIZ-1").
		WillReturnRows(infoRows().AddRow("BIZ-1", "Mindwell Psychology", "+61298765432", "", "", "", "", now, now))

	info, err := repo.Get(context.Background(), "BIZ-1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if info.Name != "Mindwell Psychology" {
		t.Errorf("name = %q", info.Name)
	}
}

func TestList(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	repo := newPostgresRepositoryWithQuerier(mock)

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT id, name, phone").
		WillReturnRows(infoRows().
			AddRow("BIZ-2", "Northside Clinic", "+61299990000", "", "", "", "", now, now).
			AddRow("BIZ-1", "Mindwell Psychology", "+61298765432", "", "", "", "", now.Add(-time.Hour), now))

	infos, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("len = %d, want 2", len(infos))
	}
	if infos[0].ID != "BIZ-2" {
		t.Errorf("first ID = %q, want newest first", infos[0].ID)
	}
}

func TestUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	repo := newPostgresRepositoryWithQuerier(mock)

	now := time.Now().UTC()
	mock.ExpectQuery("UPDATE business_info SET").
		WithArgs("BIZ-1", "", "+61211112222", "", "", "", "", pgxmock.AnyArg()).
		WillReturnRows(infoRows().AddRow("BIZ-1", "Mindwell Psychology", "+61211112222", "", "", "", "", now, now))

	info, err := repo.Update(context.Background(), "BIZ-1", Updates{Phone: "+61211112222"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if info.Phone != "+61211112222" {
		t.Errorf("phone = %q", info.Phone)
	}
}

func TestDelete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	repo := newPostgresRepositoryWithQuerier(mock)

	mock.ExpectExec("DELETE FROM business_info").
		WithArgs("BIZ-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("DELETE FROM business_info").
		WithArgs("BIZ-gone").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	if err := repo.Delete(context.Background(), "BIZ-1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := repo.Delete(context.Background(), "BIZ-gone"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
