package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend is a minimal in-memory stand-in for the accounting API.
type fakeBackend struct {
	mux          *http.ServeMux
	createdTxs   int
	rejectCreate string // when set, POST /transacciones fails with this message
}

func newFakeBackend() *fakeBackend {
	b := &fakeBackend{mux: http.NewServeMux()}

	b.mux.HandleFunc("GET /test", func(w http.ResponseWriter, r *http.Request) {})
	b.mux.HandleFunc("GET /terceros", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"nombre":"Acme Ltda","tipoDocumento":"NIT","numeroDocumento":"900123456"}]`))
	})
	b.mux.HandleFunc("GET /cuentas/activas", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"codigo":"1105","nombre":"Caja","tipo":"ACTIVO","activo":true},
			{"id":2,"codigo":"2205","nombre":"Proveedores","tipo":"PASIVO","activo":true}]`))
	})
	b.mux.HandleFunc("GET /transacciones", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":3,"fecha":"2024-03-05","descripcion":"Pago","terceroId":1,
			"partidas":[{"cuentaContableId":1,"tipo":"DEBITO","valor":100},{"cuentaContableId":2,"tipo":"CREDITO","valor":100}]}]`))
	})
	b.mux.HandleFunc("POST /transacciones", func(w http.ResponseWriter, r *http.Request) {
		if b.rejectCreate != "" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": b.rejectCreate})
			return
		}
		b.createdTxs++
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":42,"fecha":"2024-03-05","descripcion":"Pago","terceroId":1,"partidas":[]}`))
	})
	b.mux.HandleFunc("GET /saldos", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"cuentaId":1,"codigo":"1105","nombre":"Caja","tipo":"ACTIVO","saldoValido":true,
			"totalDebitos":500,"totalCreditos":200,"saldo":300,"permiteSaldoNegativo":false}]`))
	})

	return b
}

// run executes the CLI against a fake backend and returns its stdout.
func run(t *testing.T, backend *fakeBackend, args ...string) (string, error) {
	t.Helper()
	srv := httptest.NewServer(backend.mux)
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--base-url", srv.URL, "--config", filepath.Join(t.TempDir(), "none.yaml")))
	err := cmd.Execute()
	return out.String(), err
}

func TestTercerosList(t *testing.T) {
	out, err := run(t, newFakeBackend(), "terceros", "list", "-o", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "id,nombre,tipo_documento,numero_documento")
	assert.Contains(t, out, "Acme Ltda")
}

func TestSaldosSummary(t *testing.T) {
	out, err := run(t, newFakeBackend(), "saldos", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Total general: 300.00")
	assert.Contains(t, out, "en positivo: 1")
}

func TestTransaccionesList(t *testing.T) {
	out, err := run(t, newFakeBackend(), "transacciones", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Pago")
	assert.Contains(t, out, "Acme Ltda") // party resolved by id
	assert.Contains(t, out, "100.00")
}

func TestTransaccionesCreate(t *testing.T) {
	backend := newFakeBackend()
	out, err := run(t, backend, "transacciones", "create",
		"--tercero", "1", "--fecha", "2024-03-05", "--descripcion", "Pago",
		"--partida", "1:DEBITO:100", "--partida", "2:CREDITO:100")
	require.NoError(t, err)
	assert.Equal(t, 1, backend.createdTxs)
	assert.Contains(t, out, "Transaccion 42")
}

func TestTransaccionesCreate_UnbalancedNeverReachesBackend(t *testing.T) {
	backend := newFakeBackend()
	_, err := run(t, backend, "transacciones", "create",
		"--tercero", "1", "--fecha", "2024-03-05", "--descripcion", "Pago",
		"--partida", "1:DEBITO:100", "--partida", "2:CREDITO:50")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be equal")
	assert.Equal(t, 0, backend.createdTxs)
}

func TestTransaccionesCreate_NegativeBalanceRejection(t *testing.T) {
	backend := newFakeBackend()
	backend.rejectCreate = "La cuenta 'Caja' no permite saldo negativo."
	_, err := run(t, backend, "transacciones", "create",
		"--tercero", "1", "--fecha", "2024-03-05", "--descripcion", "Pago",
		"--partida", "1:DEBITO:100", "--partida", "2:CREDITO:100")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accounting policy violation")
	assert.Contains(t, err.Error(), "no permite saldo negativo")
}

func TestTransaccionesCreate_BadPartidaFlag(t *testing.T) {
	_, err := run(t, newFakeBackend(), "transacciones", "create",
		"--tercero", "1", "--fecha", "2024-03-05", "--descripcion", "Pago",
		"--partida", "1-DEBITO-100")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected cuentaId:TIPO:valor")
}

func TestTransaccionesImport_DryRun(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "import.csv")
	content := "ref,fecha,descripcion,tercero_id,cuenta_id,tipo,valor\n" +
		"T1,2024-03-05,Pago,1,1,DEBITO,100\n" +
		"T1,2024-03-05,Pago,1,2,CREDITO,100\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(content), 0o644))

	backend := newFakeBackend()
	out, err := run(t, backend, "transacciones", "import", csvPath, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "valid (dry run, not submitted)")
	assert.Equal(t, 0, backend.createdTxs)
}

func TestTransaccionesImport_MixedResults(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "import.csv")
	content := "ref,fecha,descripcion,tercero_id,cuenta_id,tipo,valor\n" +
		"T1,2024-03-05,Pago,1,1,DEBITO,100\n" +
		"T1,2024-03-05,Pago,1,2,CREDITO,100\n" +
		"T2,2024-03-06,Desbalance,1,1,DEBITO,100\n" +
		"T2,2024-03-06,Desbalance,1,2,CREDITO,10\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(content), 0o644))

	backend := newFakeBackend()
	out, err := run(t, backend, "transacciones", "import", csvPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 drafts failed")
	assert.Contains(t, out, "created with id 42")
	assert.Contains(t, out, "rejected")
	assert.Equal(t, 1, backend.createdTxs)
}

func TestPing(t *testing.T) {
	out, err := run(t, newFakeBackend(), "ping")
	require.NoError(t, err)
	assert.Contains(t, out, "Backend OK")
}
