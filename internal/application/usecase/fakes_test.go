package usecase_test

import (
	"context"
	"sort"

	"github.com/academiaskate/academia-api/internal/application/usecase"
	"github.com/academiaskate/academia-api/internal/domain/entity"
)

// Fakes en memoria para los casos de uso. Replican la semántica observable de
// los repositorios reales (nil cuando la fila no existe, update condicional de
// la preinscripción, nombres de rol en minúsculas) sin tocar la base de datos.
// El TxRunner falso no deshace escrituras: los tests no afirman sobre rollback.

// fakeTxRunner ejecuta el callback con los repos falsos compartidos.
type fakeTxRunner struct {
	repos usecase.Repos
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(r usecase.Repos) error) error {
	return fn(f.repos)
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

type fakeUsuarioRepo struct {
	usuarios map[int64]*entity.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: make(map[int64]*entity.Usuario)}
}

func (f *fakeUsuarioRepo) Create(_ context.Context, u *entity.Usuario) error {
	u.ID = int64(len(f.usuarios) + 1)
	f.usuarios[u.ID] = u
	return nil
}

func (f *fakeUsuarioRepo) GetByID(_ context.Context, id int64) (*entity.Usuario, error) {
	return f.usuarios[id], nil
}

func (f *fakeUsuarioRepo) GetByEmail(_ context.Context, email string) (*entity.Usuario, error) {
	for _, u := range f.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) GetByTokenActivacion(_ context.Context, token string) (*entity.Usuario, error) {
	for _, u := range f.usuarios {
		if u.TokenActivacion != nil && *u.TokenActivacion == token {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) Update(_ context.Context, u *entity.Usuario) error {
	f.usuarios[u.ID] = u
	return nil
}

func (f *fakeUsuarioRepo) Activar(_ context.Context, id int64) error {
	if u := f.usuarios[id]; u != nil {
		u.Activo = true
		u.TokenActivacion = nil
	}
	return nil
}

func (f *fakeUsuarioRepo) Desactivar(_ context.Context, id int64) error {
	if u := f.usuarios[id]; u != nil {
		u.Activo = false
	}
	return nil
}

func (f *fakeUsuarioRepo) List(_ context.Context, _, _ int) ([]*entity.Usuario, error) {
	out := make([]*entity.Usuario, 0, len(f.usuarios))
	for _, u := range f.usuarios {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ── Roles ─────────────────────────────────────────────────────────────────────

type fakeRolRepo struct {
	roles  map[string]*entity.Rol   // nombre → rol
	grants map[int64]map[int64]bool // usuarioID → rolID → existe
}

func newFakeRolRepo(nombres ...string) *fakeRolRepo {
	f := &fakeRolRepo{
		roles:  make(map[string]*entity.Rol),
		grants: make(map[int64]map[int64]bool),
	}
	for i, nombre := range nombres {
		f.roles[nombre] = &entity.Rol{ID: int64(i + 1), Nombre: nombre}
	}
	return f
}

func (f *fakeRolRepo) List(_ context.Context) ([]*entity.Rol, error) {
	out := make([]*entity.Rol, 0, len(f.roles))
	for _, r := range f.roles {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRolRepo) GetByNombre(_ context.Context, nombre string) (*entity.Rol, error) {
	return f.roles[nombre], nil
}

func (f *fakeRolRepo) RolesDeUsuario(_ context.Context, usuarioID int64) ([]string, error) {
	var out []string
	for rolID, ok := range f.grants[usuarioID] {
		if !ok {
			continue
		}
		for _, r := range f.roles {
			if r.ID == rolID {
				out = append(out, r.Nombre)
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

func (f *fakeRolRepo) PermisosDeUsuario(_ context.Context, _ int64) ([]string, error) {
	return nil, nil
}

func (f *fakeRolRepo) GrantExiste(_ context.Context, usuarioID, rolID int64) (bool, error) {
	return f.grants[usuarioID][rolID], nil
}

func (f *fakeRolRepo) Asignar(_ context.Context, usuarioID, rolID int64) error {
	if f.grants[usuarioID] == nil {
		f.grants[usuarioID] = make(map[int64]bool)
	}
	f.grants[usuarioID][rolID] = true
	return nil
}

func (f *fakeRolRepo) Quitar(_ context.Context, usuarioID, rolID int64) error {
	delete(f.grants[usuarioID], rolID)
	return nil
}

func (f *fakeRolRepo) ListPermisos(_ context.Context) ([]*entity.Permiso, error) {
	return nil, nil
}

func (f *fakeRolRepo) AsignarPermiso(_ context.Context, _, _ int64) error { return nil }
func (f *fakeRolRepo) QuitarPermiso(_ context.Context, _, _ int64) error  { return nil }

// tieneGrant consulta directa para aserciones.
func (f *fakeRolRepo) tieneGrant(usuarioID int64, nombreRol string) bool {
	r := f.roles[nombreRol]
	if r == nil {
		return false
	}
	return f.grants[usuarioID][r.ID]
}

// ── Administradores ───────────────────────────────────────────────────────────

type fakeAdministradorRepo struct {
	admins map[int64]*entity.Administrador
	nextID int64
}

func newFakeAdministradorRepo() *fakeAdministradorRepo {
	return &fakeAdministradorRepo{admins: make(map[int64]*entity.Administrador)}
}

func (f *fakeAdministradorRepo) Create(_ context.Context, a *entity.Administrador) error {
	f.nextID++
	a.ID = f.nextID
	f.admins[a.ID] = a
	return nil
}

func (f *fakeAdministradorRepo) GetByID(_ context.Context, id int64) (*entity.Administrador, error) {
	return f.admins[id], nil
}

func (f *fakeAdministradorRepo) GetByUsuarioID(_ context.Context, usuarioID int64) (*entity.Administrador, error) {
	for _, a := range f.admins {
		if a.UsuarioID == usuarioID {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAdministradorRepo) List(_ context.Context, _, _ int) ([]*entity.Administrador, error) {
	out := make([]*entity.Administrador, 0, len(f.admins))
	for _, a := range f.admins {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeAdministradorRepo) Update(_ context.Context, a *entity.Administrador) error {
	f.admins[a.ID] = a
	return nil
}

func (f *fakeAdministradorRepo) Delete(_ context.Context, id int64) error {
	delete(f.admins, id)
	return nil
}

// ── Instructores ──────────────────────────────────────────────────────────────

type fakeInstructorRepo struct {
	instructores map[int64]*entity.Instructor
	nextID       int64
}

func newFakeInstructorRepo() *fakeInstructorRepo {
	return &fakeInstructorRepo{instructores: make(map[int64]*entity.Instructor)}
}

func (f *fakeInstructorRepo) Create(_ context.Context, i *entity.Instructor) error {
	f.nextID++
	i.ID = f.nextID
	f.instructores[i.ID] = i
	return nil
}

func (f *fakeInstructorRepo) GetByID(_ context.Context, id int64) (*entity.Instructor, error) {
	return f.instructores[id], nil
}

func (f *fakeInstructorRepo) GetByUsuarioID(_ context.Context, usuarioID int64) (*entity.Instructor, error) {
	for _, i := range f.instructores {
		if i.UsuarioID == usuarioID {
			return i, nil
		}
	}
	return nil, nil
}

func (f *fakeInstructorRepo) List(_ context.Context, _, _ int) ([]*entity.Instructor, error) {
	out := make([]*entity.Instructor, 0, len(f.instructores))
	for _, i := range f.instructores {
		out = append(out, i)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out, nil
}

func (f *fakeInstructorRepo) Update(_ context.Context, i *entity.Instructor) error {
	f.instructores[i.ID] = i
	return nil
}

func (f *fakeInstructorRepo) SoftDelete(_ context.Context, id int64) error {
	if i := f.instructores[id]; i != nil {
		i.Estado = entity.EstadoInactivo
	}
	return nil
}

// ── Estudiantes ───────────────────────────────────────────────────────────────

type fakeEstudianteRepo struct {
	estudiantes map[int64]*entity.Estudiante
	nextID      int64
}

func newFakeEstudianteRepo() *fakeEstudianteRepo {
	return &fakeEstudianteRepo{estudiantes: make(map[int64]*entity.Estudiante)}
}

func (f *fakeEstudianteRepo) Create(_ context.Context, e *entity.Estudiante) error {
	f.nextID++
	e.ID = f.nextID
	f.estudiantes[e.ID] = e
	return nil
}

func (f *fakeEstudianteRepo) GetByID(_ context.Context, id int64) (*entity.Estudiante, error) {
	return f.estudiantes[id], nil
}

func (f *fakeEstudianteRepo) GetByIDForUpdate(_ context.Context, id int64) (*entity.Estudiante, error) {
	return f.estudiantes[id], nil
}

func (f *fakeEstudianteRepo) GetByUsuarioID(_ context.Context, usuarioID int64) (*entity.Estudiante, error) {
	for _, e := range f.estudiantes {
		if e.UsuarioID == usuarioID {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeEstudianteRepo) PropietarioDe(_ context.Context, id int64) (int64, bool, error) {
	e := f.estudiantes[id]
	if e == nil {
		return 0, false, nil
	}
	return e.UsuarioID, true, nil
}

func (f *fakeEstudianteRepo) List(_ context.Context, _, _ int) ([]*entity.Estudiante, error) {
	out := make([]*entity.Estudiante, 0, len(f.estudiantes))
	for _, e := range f.estudiantes {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeEstudianteRepo) ListPreinscripciones(_ context.Context, _, _ int) ([]*entity.Estudiante, error) {
	var out []*entity.Estudiante
	for _, e := range f.estudiantes {
		if e.EstadoPreinscripcion == entity.PreinscripcionPendiente {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeEstudianteRepo) Update(_ context.Context, e *entity.Estudiante) error {
	f.estudiantes[e.ID] = e
	return nil
}

func (f *fakeEstudianteRepo) SoftDelete(_ context.Context, id int64) error {
	if e := f.estudiantes[id]; e != nil {
		e.Estado = entity.EstadoInactivo
	}
	return nil
}

// TransicionarPreinscripcion replica el update condicional: solo afecta la
// fila si sigue pendiente.
func (f *fakeEstudianteRepo) TransicionarPreinscripcion(_ context.Context, id int64, estado string) (bool, error) {
	e := f.estudiantes[id]
	if e == nil || e.EstadoPreinscripcion != entity.PreinscripcionPendiente {
		return false, nil
	}
	e.EstadoPreinscripcion = estado
	if estado == entity.PreinscripcionAceptada {
		e.Estado = entity.EstadoActivo
	}
	return true, nil
}

// ── Clases y planes ───────────────────────────────────────────────────────────

type fakeClaseRepo struct {
	clases map[int64]*entity.Clase
	nextID int64
}

func newFakeClaseRepo() *fakeClaseRepo {
	return &fakeClaseRepo{clases: make(map[int64]*entity.Clase)}
}

func (f *fakeClaseRepo) Create(_ context.Context, c *entity.Clase) error {
	f.nextID++
	c.ID = f.nextID
	f.clases[c.ID] = c
	return nil
}

func (f *fakeClaseRepo) GetByID(_ context.Context, id int64) (*entity.Clase, error) {
	return f.clases[id], nil
}

func (f *fakeClaseRepo) GetByIDForUpdate(_ context.Context, id int64) (*entity.Clase, error) {
	return f.clases[id], nil
}

func (f *fakeClaseRepo) List(_ context.Context, _, _ int) ([]*entity.Clase, error) {
	out := make([]*entity.Clase, 0, len(f.clases))
	for _, c := range f.clases {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeClaseRepo) Update(_ context.Context, c *entity.Clase) error {
	f.clases[c.ID] = c
	return nil
}

func (f *fakeClaseRepo) Delete(_ context.Context, id int64) error {
	delete(f.clases, id)
	return nil
}

type fakePlanRepo struct {
	planes map[int64]*entity.Plan
	nextID int64
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{planes: make(map[int64]*entity.Plan)}
}

func (f *fakePlanRepo) Create(_ context.Context, p *entity.Plan) error {
	f.nextID++
	p.ID = f.nextID
	f.planes[p.ID] = p
	return nil
}

func (f *fakePlanRepo) GetByID(_ context.Context, id int64) (*entity.Plan, error) {
	return f.planes[id], nil
}

func (f *fakePlanRepo) List(_ context.Context, _, _ int) ([]*entity.Plan, error) {
	out := make([]*entity.Plan, 0, len(f.planes))
	for _, p := range f.planes {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakePlanRepo) Update(_ context.Context, p *entity.Plan) error {
	f.planes[p.ID] = p
	return nil
}

func (f *fakePlanRepo) Delete(_ context.Context, id int64) error {
	delete(f.planes, id)
	return nil
}

// ── Matrículas ────────────────────────────────────────────────────────────────

type fakeMatriculaRepo struct {
	matriculas map[int64]*entity.MatriculaDetalle
	nextID     int64
}

func newFakeMatriculaRepo() *fakeMatriculaRepo {
	return &fakeMatriculaRepo{matriculas: make(map[int64]*entity.MatriculaDetalle)}
}

func (f *fakeMatriculaRepo) Create(_ context.Context, m *entity.Matricula) error {
	f.nextID++
	m.ID = f.nextID
	f.matriculas[m.ID] = &entity.MatriculaDetalle{Matricula: *m}
	return nil
}

func (f *fakeMatriculaRepo) GetDetalle(_ context.Context, id int64) (*entity.MatriculaDetalle, error) {
	return f.matriculas[id], nil
}

func (f *fakeMatriculaRepo) ListByEstudiante(_ context.Context, estudianteID int64) ([]*entity.MatriculaDetalle, error) {
	var out []*entity.MatriculaDetalle
	for _, m := range f.matriculas {
		if m.EstudianteID == estudianteID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeMatriculaRepo) List(_ context.Context, _, _ int) ([]*entity.MatriculaDetalle, error) {
	out := make([]*entity.MatriculaDetalle, 0, len(f.matriculas))
	for _, m := range f.matriculas {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ── Productos y variantes ─────────────────────────────────────────────────────

type fakeProductoRepo struct {
	productos map[int64]*entity.Producto
	variantes map[int64]*entity.VarianteProducto
	nextID    int64
}

func newFakeProductoRepo() *fakeProductoRepo {
	return &fakeProductoRepo{
		productos: make(map[int64]*entity.Producto),
		variantes: make(map[int64]*entity.VarianteProducto),
	}
}

func (f *fakeProductoRepo) Create(_ context.Context, p *entity.Producto) error {
	f.nextID++
	p.ID = f.nextID
	f.productos[p.ID] = p
	return nil
}

func (f *fakeProductoRepo) GetByID(_ context.Context, id int64) (*entity.Producto, error) {
	return f.productos[id], nil
}

func (f *fakeProductoRepo) List(_ context.Context, _, _ int) ([]*entity.Producto, error) {
	out := make([]*entity.Producto, 0, len(f.productos))
	for _, p := range f.productos {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeProductoRepo) Update(_ context.Context, p *entity.Producto) error {
	f.productos[p.ID] = p
	return nil
}

func (f *fakeProductoRepo) Delete(_ context.Context, id int64) error {
	delete(f.productos, id)
	return nil
}

func (f *fakeProductoRepo) CreateVariante(_ context.Context, v *entity.VarianteProducto) error {
	f.nextID++
	v.ID = f.nextID
	f.variantes[v.ID] = v
	return nil
}

func (f *fakeProductoRepo) GetVariante(_ context.Context, id int64) (*entity.VarianteProducto, error) {
	return f.variantes[id], nil
}

func (f *fakeProductoRepo) GetVarianteForUpdate(_ context.Context, id int64) (*entity.VarianteProducto, error) {
	return f.variantes[id], nil
}

func (f *fakeProductoRepo) ListVariantes(_ context.Context, productoID int64) ([]*entity.VarianteProducto, error) {
	var out []*entity.VarianteProducto
	for _, v := range f.variantes {
		if v.ProductoID == productoID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeProductoRepo) UpdateVariante(_ context.Context, v *entity.VarianteProducto) error {
	f.variantes[v.ID] = v
	return nil
}

func (f *fakeProductoRepo) ActualizarStock(_ context.Context, varianteID int64, stock int) error {
	if v := f.variantes[varianteID]; v != nil {
		v.Stock = stock
	}
	return nil
}

// ── Ventas ────────────────────────────────────────────────────────────────────

type fakeVentaRepo struct {
	ventas   map[int64]*entity.Venta
	detalles map[int64][]*entity.DetalleVenta
	nextID   int64
}

func newFakeVentaRepo() *fakeVentaRepo {
	return &fakeVentaRepo{
		ventas:   make(map[int64]*entity.Venta),
		detalles: make(map[int64][]*entity.DetalleVenta),
	}
}

func (f *fakeVentaRepo) Create(_ context.Context, v *entity.Venta, detalles []*entity.DetalleVenta) error {
	f.nextID++
	v.ID = f.nextID
	f.ventas[v.ID] = v
	for i, d := range detalles {
		d.ID = int64(i + 1)
		d.VentaID = v.ID
	}
	f.detalles[v.ID] = detalles
	return nil
}

func (f *fakeVentaRepo) GetByID(_ context.Context, id int64) (*entity.Venta, error) {
	return f.ventas[id], nil
}

func (f *fakeVentaRepo) GetByIDForUpdate(_ context.Context, id int64) (*entity.Venta, error) {
	return f.ventas[id], nil
}

func (f *fakeVentaRepo) GetDetalles(_ context.Context, ventaID int64) ([]*entity.DetalleVenta, error) {
	return f.detalles[ventaID], nil
}

func (f *fakeVentaRepo) Anular(_ context.Context, id int64) error {
	if v := f.ventas[id]; v != nil {
		v.Estado = entity.VentaAnulada
	}
	return nil
}

func (f *fakeVentaRepo) List(_ context.Context, _, _ int) ([]*entity.Venta, error) {
	out := make([]*entity.Venta, 0, len(f.ventas))
	for _, v := range f.ventas {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ── Clientes ──────────────────────────────────────────────────────────────────

type fakeClienteRepo struct {
	clientes map[int64]*entity.Cliente
	nextID   int64
}

func newFakeClienteRepo() *fakeClienteRepo {
	return &fakeClienteRepo{clientes: make(map[int64]*entity.Cliente)}
}

func (f *fakeClienteRepo) Create(_ context.Context, c *entity.Cliente) error {
	f.nextID++
	c.ID = f.nextID
	f.clientes[c.ID] = c
	return nil
}

func (f *fakeClienteRepo) GetByID(_ context.Context, id int64) (*entity.Cliente, error) {
	return f.clientes[id], nil
}

func (f *fakeClienteRepo) GetByNIT(_ context.Context, nit string) (*entity.Cliente, error) {
	for _, c := range f.clientes {
		if c.NIT == nit {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeClienteRepo) List(_ context.Context, _, _ int) ([]*entity.Cliente, error) {
	out := make([]*entity.Cliente, 0, len(f.clientes))
	for _, c := range f.clientes {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeClienteRepo) Update(_ context.Context, c *entity.Cliente) error {
	f.clientes[c.ID] = c
	return nil
}

func (f *fakeClienteRepo) Delete(_ context.Context, id int64) error {
	delete(f.clientes, id)
	return nil
}

// ── Correo y recibos ──────────────────────────────────────────────────────────

type envioCapturado struct {
	To      string
	Asunto  string
	Adjunto []byte
	Nombre  string
}

type fakeMailer struct {
	enviados []envioCapturado
}

func (f *fakeMailer) Enviar(to, asunto, _ string) error {
	f.enviados = append(f.enviados, envioCapturado{To: to, Asunto: asunto})
	return nil
}

func (f *fakeMailer) EnviarConAdjunto(to, asunto, _ string, adjunto []byte, nombreArchivo string) error {
	f.enviados = append(f.enviados, envioCapturado{To: to, Asunto: asunto, Adjunto: adjunto, Nombre: nombreArchivo})
	return nil
}

type fakeReciboGenerator struct{}

func (fakeReciboGenerator) GenerarRecibo(_ context.Context, _ *entity.Venta, _ []*entity.DetalleVenta, _ *entity.Cliente) ([]byte, error) {
	return []byte("%PDF-recibo"), nil
}
