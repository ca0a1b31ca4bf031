package metrics

import (
	"fmt"
	"time"

	influxdb "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
)

// InfluxDB writes one point per codec operation to the given bucket.
type InfluxDB struct {
	client influxdb.Client
	write  api.WriteAPI
}

func NewInfluxDB(host, key, organization, bucket string) *InfluxDB {
	client := influxdb.NewClient("http://"+host, key)
	return &InfluxDB{
		client: client,
		write:  client.WriteAPI(organization, bucket),
	}
}

func (db *InfluxDB) LogOperation(op string, d time.Duration, rec *time.Time, err bool) {
	db.write.WriteRecord(line(op, d, rec, err))
}

// Close flushes pending points.
func (db *InfluxDB) Close() {
	db.write.Flush()
	db.client.Close()
}

func line(op string, d time.Duration, rec *time.Time, err bool) string {
	e := '0'
	if err {
		e = '1'
	}
	return fmt.Sprintf("codec,op=%s,error=%c duration=%di %d", op, e, d.Microseconds(), rec.UnixNano())
}
