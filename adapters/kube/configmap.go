// Package kube attaches a Kubernetes ConfigMap as a live configuration source.
package kube

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"time"

	"mypodinfo/domain"
	"mypodinfo/helpers"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"gopkg.in/yaml.v3"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/fields"
	"k8s.io/apimachinery/pkg/watch"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
)

const (
	// DefaultTokenPath is where Kubernetes mounts the service-account token into a pod.
	DefaultTokenPath = "/var/run/secrets/kubernetes.io/serviceaccount/token"
	// DefaultNamespace is used when no namespace is configured.
	DefaultNamespace = "default"

	defaultRetryDelay = time.Second
)

var errWatchClosed = errors.New("configmap watch channel closed")

// ClientFactory builds the Kubernetes client once the source decides to watch.
type ClientFactory func() (kubernetes.Interface, error)

// InClusterClient builds a clientset from the pod's service-account credentials.
func InClusterClient() (kubernetes.Interface, error) {
	cfg, err := rest.InClusterConfig()
	if err != nil {
		return nil, fmt.Errorf("in-cluster config: %w", err)
	}
	cs, err := kubernetes.NewForConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("create clientset: %w", err)
	}
	return cs, nil
}

// configMapSource implements interfaces.ConfigSource for one named ConfigMap.
type configMapSource struct {
	tokenPath  string
	namespace  string
	name       string
	newClient  ClientFactory
	retryDelay time.Duration
	logger     log.Logger
}

// NewConfigMapSource creates a source watching namespace/name. Probe looks for tokenPath;
// the client is only built when Watch starts. Panics on empty name or nil factory/logger.
func NewConfigMapSource(tokenPath, namespace, name string, newClient ClientFactory, logger log.Logger) *configMapSource {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &configMapSource{
		tokenPath:  helpers.StrPanic(tokenPath, "adapters.kube.configmap.go: token path is required"),
		namespace:  namespace,
		name:       helpers.StrPanic(name, "adapters.kube.configmap.go: configmap name is required"),
		newClient:  helpers.NilPanic(newClient, "adapters.kube.configmap.go: client factory is required"),
		retryDelay: defaultRetryDelay,
		logger: log.With(helpers.NilPanic(logger, "adapters.kube.configmap.go: logger is required"),
			"component", "configmap_source", "namespace", namespace, "configmap", name),
	}
}

// Probe reports whether the service-account token exists, i.e. whether we run inside a cluster.
func (s *configMapSource) Probe(_ context.Context) (bool, error) {
	_, err := os.Stat(s.tokenPath)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", s.tokenPath, err)
}

// Watch delivers the ConfigMap content and its later changes until ctx is done.
// A dropped watch is re-opened after retryDelay.
func (s *configMapSource) Watch(ctx context.Context, onChange func(domain.Configuration)) error {
	client, err := s.newClient()
	if err != nil {
		return fmt.Errorf("create kubernetes client: %w", err)
	}

	for {
		err := s.watchOnce(ctx, client, onChange)
		if ctx.Err() != nil {
			return nil
		}
		level.Warn(s.logger).Log("msg", "ConfigMap watch interrupted, retrying", "err", err, "retry_in", s.retryDelay)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(s.retryDelay):
		}
	}
}

// watchOnce opens the watch before reading the current object so no change can slip in between.
func (s *configMapSource) watchOnce(ctx context.Context, client kubernetes.Interface, onChange func(domain.Configuration)) error {
	configMaps := client.CoreV1().ConfigMaps(s.namespace)

	w, err := configMaps.Watch(ctx, metav1.ListOptions{
		FieldSelector: fields.OneTermEqualSelector("metadata.name", s.name).String(),
	})
	if err != nil {
		return fmt.Errorf("watch configmap: %w", err)
	}
	defer w.Stop()

	cm, err := configMaps.Get(ctx, s.name, metav1.GetOptions{})
	switch {
	case err == nil:
		s.apply(cm, onChange)
	case apierrors.IsNotFound(err):
		level.Info(s.logger).Log("msg", "ConfigMap not found, waiting for it to be created")
	default:
		return fmt.Errorf("get configmap: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.ResultChan():
			if !ok {
				return errWatchClosed
			}
			switch ev.Type {
			case watch.Added, watch.Modified:
				cm, ok := ev.Object.(*corev1.ConfigMap)
				if !ok || cm.Name != s.name {
					continue
				}
				s.apply(cm, onChange)
			case watch.Deleted:
				level.Info(s.logger).Log("msg", "ConfigMap deleted, keeping last applied values")
			case watch.Error:
				return fmt.Errorf("watch event error: %w", apierrors.FromObject(ev.Object))
			}
		}
	}
}

func (s *configMapSource) apply(cm *corev1.ConfigMap, onChange func(domain.Configuration)) {
	update, err := DecodeConfigMap(cm)
	if err != nil {
		level.Warn(s.logger).Log("msg", "Some ConfigMap entries could not be decoded", "err", err)
	}
	if len(update) == 0 {
		return
	}
	onChange(update)
}

// DecodeConfigMap turns ConfigMap data into a configuration overlay.
// Keys ending in .yaml, .yml or .json hold whole documents whose top-level keys are overlaid;
// any other key is a single entry whose value is decoded as a YAML scalar ("9090" becomes 9090).
// Document keys are applied first, so plain keys win on overlap. Undecodable documents are
// skipped and reported in the returned error.
func DecodeConfigMap(cm *corev1.ConfigMap) (domain.Configuration, error) {
	out := domain.Configuration{}
	if cm == nil {
		return out, nil
	}

	keys := make([]string, 0, len(cm.Data))
	for k := range cm.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs []error
	for _, k := range keys {
		if !isDocumentKey(k) {
			continue
		}
		var doc map[string]any
		if err := yaml.Unmarshal([]byte(cm.Data[k]), &doc); err != nil {
			errs = append(errs, fmt.Errorf("key %s: %w", k, err))
			continue
		}
		for dk, dv := range doc {
			out[dk] = dv
		}
	}
	for _, k := range keys {
		if isDocumentKey(k) {
			continue
		}
		out[k] = decodeScalar(cm.Data[k])
	}
	return out, errors.Join(errs...)
}

func isDocumentKey(key string) bool {
	lower := strings.ToLower(key)
	return strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") || strings.HasSuffix(lower, ".json")
}

func decodeScalar(raw string) any {
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil || v == nil {
		return raw
	}
	return v
}
