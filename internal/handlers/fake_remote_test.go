package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
)

// productRec and supplierRec are the fake upstream's stored records, in the
// remote API's wire shape.
type productRec struct {
	ID       int    `json:"id"`
	Nombre   string `json:"nombre"`
	Modelo   string `json:"modelo"`
	Precio   string `json:"precio"` // quoted decimal, like a DRF DecimalField
	Stock    int    `json:"stock"`
	Proveedor int   `json:"proveedor"`
	Imagen   string `json:"imagen,omitempty"`
}

type supplierRec struct {
	ID       int    `json:"id"`
	Nombre   string `json:"nombre"`
	Contacto string `json:"contacto,omitempty"`
}

// fakeRemoteAPI is an in-memory stand-in for the external catalog service.
// It answers with the envelope shapes the real API is known to produce:
// {"data": ...} for products, {"results": ...} for suppliers.
type fakeRemoteAPI struct {
	mu        sync.Mutex
	products  map[int]productRec
	suppliers map[int]supplierRec
	order     []int // product insertion order
	supOrder  []int
	nextID    int
}

func newFakeRemoteAPI() *fakeRemoteAPI {
	return &fakeRemoteAPI{
		products:  make(map[int]productRec),
		suppliers: make(map[int]supplierRec),
		nextID:    1,
	}
}

func (f *fakeRemoteAPI) addProduct(rec productRec) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec.ID = f.nextID
	f.nextID++
	f.products[rec.ID] = rec
	f.order = append(f.order, rec.ID)
	return rec.ID
}

func (f *fakeRemoteAPI) addSupplier(rec supplierRec) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec.ID = f.nextID
	f.nextID++
	f.suppliers[rec.ID] = rec
	f.supOrder = append(f.supOrder, rec.ID)
	return rec.ID
}

func (f *fakeRemoteAPI) server() *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/productos/{$}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		items := make([]productRec, 0, len(f.order))
		for _, id := range f.order {
			if rec, ok := f.products[id]; ok {
				items = append(items, rec)
			}
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"data": items})
	})

	mux.HandleFunc("POST /api/productos/{$}", func(w http.ResponseWriter, r *http.Request) {
		rec, errs := f.parseProductForm(r)
		if len(errs) > 0 {
			writeJSON(w, http.StatusBadRequest, errs)
			return
		}
		id := f.addProduct(rec)
		f.mu.Lock()
		rec = f.products[id]
		f.mu.Unlock()
		writeJSON(w, http.StatusCreated, rec)
	})

	mux.HandleFunc("GET /api/productos/{id}/{$}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		rec, ok := f.products[pathID(r)]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
			return
		}
		writeJSON(w, http.StatusOK, rec)
	})

	mux.HandleFunc("PUT /api/productos/{id}/{$}", func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r)
		f.mu.Lock()
		existing, ok := f.products[id]
		f.mu.Unlock()
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
			return
		}
		rec, errs := f.parseProductForm(r)
		if len(errs) > 0 {
			writeJSON(w, http.StatusBadRequest, errs)
			return
		}
		rec.ID = id
		if rec.Imagen == "" {
			rec.Imagen = existing.Imagen
		}
		f.mu.Lock()
		f.products[id] = rec
		f.mu.Unlock()
		writeJSON(w, http.StatusOK, rec)
	})

	mux.HandleFunc("DELETE /api/productos/{id}/{$}", func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r)
		f.mu.Lock()
		defer f.mu.Unlock()
		if _, ok := f.products[id]; !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
			return
		}
		delete(f.products, id)
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("GET /api/proveedor/{$}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		items := make([]supplierRec, 0, len(f.supOrder))
		for _, id := range f.supOrder {
			if rec, ok := f.suppliers[id]; ok {
				items = append(items, rec)
			}
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"results": items})
	})

	mux.HandleFunc("POST /api/proveedor/{$}", func(w http.ResponseWriter, r *http.Request) {
		var rec supplierRec
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil || rec.Nombre == "" {
			writeJSON(w, http.StatusBadRequest, map[string][]string{"nombre": {"Este campo es requerido."}})
			return
		}
		id := f.addSupplier(rec)
		f.mu.Lock()
		rec = f.suppliers[id]
		f.mu.Unlock()
		writeJSON(w, http.StatusCreated, rec)
	})

	mux.HandleFunc("GET /api/proveedor/{id}/{$}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		rec, ok := f.suppliers[pathID(r)]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
			return
		}
		writeJSON(w, http.StatusOK, rec)
	})

	mux.HandleFunc("PUT /api/proveedor/{id}/{$}", func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r)
		f.mu.Lock()
		_, ok := f.suppliers[id]
		f.mu.Unlock()
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
			return
		}
		var rec supplierRec
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil || rec.Nombre == "" {
			writeJSON(w, http.StatusBadRequest, map[string][]string{"nombre": {"Este campo es requerido."}})
			return
		}
		rec.ID = id
		f.mu.Lock()
		f.suppliers[id] = rec
		f.mu.Unlock()
		writeJSON(w, http.StatusOK, rec)
	})

	mux.HandleFunc("DELETE /api/proveedor/{id}/{$}", func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r)
		f.mu.Lock()
		defer f.mu.Unlock()
		if _, ok := f.suppliers[id]; !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
			return
		}
		delete(f.suppliers, id)
		w.WriteHeader(http.StatusNoContent)
	})

	return httptest.NewServer(mux)
}

func (f *fakeRemoteAPI) parseProductForm(r *http.Request) (productRec, map[string][]string) {
	errs := make(map[string][]string)
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		errs["body"] = []string{"se esperaba multipart/form-data"}
		return productRec{}, errs
	}
	rec := productRec{
		Nombre: r.FormValue("nombre"),
		Modelo: r.FormValue("modelo"),
		Precio: r.FormValue("precio"),
	}
	for _, field := range []string{"nombre", "modelo", "precio", "stock", "proveedor"} {
		if r.FormValue(field) == "" {
			errs[field] = []string{"Este campo es requerido."}
		}
	}
	if len(errs) > 0 {
		return productRec{}, errs
	}
	rec.Stock, _ = strconv.Atoi(r.FormValue("stock"))
	rec.Proveedor, _ = strconv.Atoi(r.FormValue("proveedor"))
	if _, header, err := r.FormFile("imagen"); err == nil {
		rec.Imagen = "/media/" + header.Filename
	}
	return rec, nil
}

func pathID(r *http.Request) int {
	id, _ := strconv.Atoi(r.PathValue("id"))
	return id
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
