package reservation

import "github.com/antoniozubakha/salon-booking-service/pkg/txmanager"

// DBExecutor общий интерфейс для выполнения запросов (*sql.DB, *sql.Tx)
type DBExecutor = txmanager.DBExecutor
